package owners

// Owner es un dueño (GET /Duenos).
type Owner struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
}

func (o Owner) RecordID() int64 { return o.ID }
