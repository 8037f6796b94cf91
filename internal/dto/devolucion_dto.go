package dto

type CrearDevolucionRequest struct {
	CodigoDevolucion string `json:"codigo_devolucion" validate:"required"`
	Fecha            string `json:"fecha"             validate:"omitempty,datetime=2006-01-02"`
	Motivo           string `json:"motivo"            validate:"required,min=5"`
	CodigoFactura    string `json:"codigo_factura"    validate:"required"`
	CodigoProducto   string `json:"codigo_producto"   validate:"required"`
}

type ActualizarDevolucionRequest struct {
	Fecha  string `json:"fecha"  validate:"omitempty,datetime=2006-01-02"`
	Motivo string `json:"motivo"`
}
