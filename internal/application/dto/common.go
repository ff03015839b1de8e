package dto

// Envelope es la envoltura estándar de las respuestas de la API (excepto auth
// y el feed de actividad, que conservan sus formas propias). Timestamp se
// renderiza en la zona horaria de despliegue configurada, no en ISO.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Supplier  any    `json:"supplier,omitempty"`
	Count     *int   `json:"count,omitempty"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}
