package service

// Notifier доставляет сообщение оператору, ошибки доставки не возвращаются вызывающему
type Notifier interface {
	Notify(message string)
}
