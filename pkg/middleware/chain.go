package middleware

// Chain composes decorators around a handler. The first decorator listed
// ends up outermost, so Chain(a, b)(h) is a(b(h)).
func Chain[H any](decorators ...func(H) H) func(H) H {
	return func(handler H) H {
		for i := len(decorators) - 1; i >= 0; i-- {
			handler = decorators[i](handler)
		}
		return handler
	}
}
