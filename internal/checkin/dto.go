// AngelaMos | 2026
// dto.go

package checkin

type CreateRequest struct {
	Tipo           string   `json:"tipo"            validate:"required,max=50"`
	Prioridades    []string `json:"prioridades"     validate:"max=50,dive,max=500"`
	EnergiaAtual   *int     `json:"energia_atual"   validate:"required"`
	FocoPrincipal  string   `json:"foco_principal"  validate:"max=500"`
	Bloqueios      []string `json:"bloqueios"       validate:"max=50,dive,max=500"`
	ProximosPassos []string `json:"proximos_passos" validate:"max=50,dive,max=500"`
}

// toRecord copies the request lists; absent lists become empty.
func (req CreateRequest) toRecord(userID string) *Record {
	record := Record{
		UserID:         userID,
		Tipo:           req.Tipo,
		Prioridades:    req.Prioridades,
		EnergiaAtual:   *req.EnergiaAtual,
		FocoPrincipal:  req.FocoPrincipal,
		Bloqueios:      req.Bloqueios,
		ProximosPassos: req.ProximosPassos,
	}.clone()
	return &record
}
