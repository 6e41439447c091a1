package stream

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/mhollan/solstice/pkg/common"
	"github.com/mhollan/solstice/pkg/datasource"
)

// Source reads bar batches from a websocket feed. Every text message is
// expected to be a JSON array of bars sharing one timestamp. A normal
// close from the peer ends the replay with datasource.ErrEof.
type Source struct {
	logger *zap.Logger
	url    string
	conn   *websocket.Conn
}

func NewSource(logger *zap.Logger, url string) *Source {
	return &Source{
		logger: logger,
		url:    url,
	}
}

func (s *Source) Connect() error {
	conn, _, err := websocket.DefaultDialer.Dial(s.url, nil)
	if err != nil {
		return fmt.Errorf("websocket dial %s: %w", s.url, err)
	}
	s.conn = conn
	s.logger.Info("stream connected", zap.String("url", s.url))
	return nil
}

func (s *Source) Close() {
	if s.conn == nil {
		return
	}
	_ = s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = s.conn.Close()
}

func (s *Source) Next() ([]common.Bar, error) {
	if s.conn == nil {
		return nil, fmt.Errorf("stream source is not connected")
	}

	_, payload, err := s.conn.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			s.logger.Info("stream closed by peer", zap.String("url", s.url))
			return nil, datasource.ErrEof
		}
		return nil, fmt.Errorf("websocket read: %w", err)
	}

	var batch []common.Bar
	if err := json.Unmarshal(payload, &batch); err != nil {
		return nil, fmt.Errorf("decode bar batch: %w", err)
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("empty bar batch")
	}
	return batch, nil
}
