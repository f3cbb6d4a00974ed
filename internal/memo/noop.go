package memo

// NoOp is a memo that remembers nothing.
type NoOp[V any] struct{}

func (NoOp[V]) Get(*Key) (value V, hit bool) { return value, false }
func (NoOp[V]) Set(*Key, V)                  {}
func (NoOp[V]) Len() int64                   { return 0 }
func (NoOp[V]) Clear()                       {}
