package ports

// EventPublisher define a interface para publicação de eventos em
// tempo real aos clientes conectados
type EventPublisher interface {
	Publish(event []byte)
}
