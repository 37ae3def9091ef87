package ports

// Notifier puerto de salida para alertas de stock. Entrega best-effort:
// el adaptador registra las fallas y no las propaga (fire-and-forget
// desde el punto de vista del que llama).
type Notifier interface {
	Send(to, subject, body string)
}
