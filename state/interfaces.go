package state

// Readable exposes read-only access to a cell's value and change feed.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func()) func()
	SubscribeWithScheduler(scheduler Scheduler, fn func()) func()
}

// Writable adds the write side of a cell.
type Writable[T any] interface {
	Readable[T]
	Set(value T)
	Update(fn func(T) T)
}
