package entity

// Values copia una lista de punteros de repositorio a valores para el motor de agregación.
// Los nil se omiten.
func Values[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, *it)
		}
	}
	return out
}
