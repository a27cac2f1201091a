// AngelaMos | 2026
// seed.go

package persistence

import (
	"fmt"

	"github.com/carterperez-dev/sage-nfm/internal/checkin"
	"github.com/carterperez-dev/sage-nfm/internal/core"
	"github.com/carterperez-dev/sage-nfm/internal/mps"
	"github.com/carterperez-dev/sage-nfm/internal/user"
)

const (
	DemoEmail    = "petrus@sage-nfm.com"
	DemoPassword = "password"
)

type Seed struct {
	Users    []user.User
	Mps      []mps.Record
	Checkins []checkin.Record
}

// DemoSeed is the example account loaded into fallback mode in
// development: one user with one MPS and one check-in.
func DemoSeed() (Seed, error) {
	hash, err := core.HashPassword(DemoPassword)
	if err != nil {
		return Seed{}, fmt.Errorf("hash demo password: %w", err)
	}

	demo := user.User{
		Email:        DemoEmail,
		PasswordHash: hash,
		Name:         "Petrucio Barros",
	}
	demo.Stamp()

	snapshot := mps.Record{
		UserID:    demo.ID,
		Energia:   7,
		Foco:      6,
		Humor:     8,
		Motivacao: 7,
		Ansiedade: 4,
		Notas:     "Dia produtivo, boa energia pela manhã",
	}
	snapshot.Stamp()

	morning := checkin.Record{
		UserID:         demo.ID,
		Tipo:           "matinal",
		Prioridades:    checkin.StringList{"SAGE-NFM API", "Documentação", "Testes"},
		EnergiaAtual:   8,
		FocoPrincipal:  "Desenvolvimento",
		Bloqueios:      checkin.StringList{"Configuração ambiente"},
		ProximosPassos: checkin.StringList{"Deploy Vercel", "Testes API"},
	}
	morning.Stamp()

	return Seed{
		Users:    []user.User{demo},
		Mps:      []mps.Record{snapshot},
		Checkins: []checkin.Record{morning},
	}, nil
}
