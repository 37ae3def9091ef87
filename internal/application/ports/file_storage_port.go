package ports

// FileStorage puerto de salida para el almacenamiento de imágenes de producto.
// Save devuelve una referencia opaca que se guarda en el producto tal cual;
// un archivo vacío es un error.
type FileStorage interface {
	Save(data []byte) (string, error)
}
