// AngelaMos | 2026
// dto.go

package dashboard

import (
	"github.com/carterperez-dev/sage-nfm/internal/checkin"
	"github.com/carterperez-dev/sage-nfm/internal/mps"
)

type Summary struct {
	TotalMps      int     `json:"total_mps"`
	TotalCheckins int     `json:"total_checkins"`
	AvgEnergia    float64 `json:"media_energia"`
	AvgFoco       float64 `json:"media_foco"`
}

// Stats keeps the response keys clients already read: resumo,
// ultimos_mps and ultimos_checkins.
type Stats struct {
	Summary        Summary          `json:"resumo"`
	RecentMps      []mps.Record     `json:"ultimos_mps"`
	RecentCheckins []checkin.Record `json:"ultimos_checkins"`
}
