// AngelaMos | 2026
// dto.go

package mps

type CreateRequest struct {
	Energia   *int   `json:"energia"   validate:"required"`
	Foco      *int   `json:"foco"      validate:"required"`
	Humor     *int   `json:"humor"     validate:"required"`
	Motivacao *int   `json:"motivacao" validate:"required"`
	Ansiedade *int   `json:"ansiedade" validate:"required"`
	Notas     string `json:"notas"     validate:"max=5000"`
}

func (req CreateRequest) toRecord(userID string) *Record {
	return &Record{
		UserID:    userID,
		Energia:   *req.Energia,
		Foco:      *req.Foco,
		Humor:     *req.Humor,
		Motivacao: *req.Motivacao,
		Ansiedade: *req.Ansiedade,
		Notas:     req.Notas,
	}
}
