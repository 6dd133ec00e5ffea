package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/gasoil"
	"github.com/jhoicas/minegest-api/pkg/logger"
)

// DashboardUseCase tablero diario de gasoil.
//
// Dos fuentes: el record store del dueño (GetDashboard) o un snapshot JSON
// enviado por un store externo (Compute). En ambos casos el cálculo es el mismo.
type DashboardUseCase struct {
	repos Repos
	loc   *time.Location
	log   *logger.Logger
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso. loc nil usa la zona local.
func NewDashboardUseCase(repos Repos, loc *time.Location, log *logger.Logger) *DashboardUseCase {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{repos: repos, loc: loc, log: log.Component("dashboard"), now: time.Now}
}

// GetDashboard tablero del día filterDate (YYYY-MM-DD); vacío = hoy.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, ownerID, filterDate string) (*gasoil.Dashboard, error) {
	day, err := uc.resolveDay(filterDate, uc.loc)
	if err != nil {
		return nil, err
	}
	data, err := uc.repos.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	d := gasoil.BuildDashboard(data.snapshot(), day, uc.loc)
	uc.reportSkipped(ownerID, d)
	return &d, nil
}

// Compute calcula el tablero sobre un snapshot externo. La zona del cuerpo,
// si viene, reemplaza la configurada.
func (uc *DashboardUseCase) Compute(_ context.Context, req *dto.ComputeDashboardRequest) (*gasoil.Dashboard, error) {
	if req == nil {
		return nil, domain.ErrInvalidInput
	}
	loc := uc.loc
	if tz := strings.TrimSpace(req.Timezone); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		loc = l
	}
	day, err := uc.resolveDay(req.FilterDate, loc)
	if err != nil {
		return nil, err
	}
	d := gasoil.BuildDashboard(req.ToSnapshot(), day, loc)
	uc.reportSkipped("", d)
	return &d, nil
}

func (uc *DashboardUseCase) resolveDay(filterDate string, loc *time.Location) (string, error) {
	filterDate = strings.TrimSpace(filterDate)
	if filterDate == "" {
		return uc.now().In(loc).Format(gasoil.DayLayout), nil
	}
	if _, err := time.ParseInLocation(gasoil.DayLayout, filterDate, loc); err != nil {
		return "", domain.ErrInvalidInput
	}
	return filterDate, nil
}

func (uc *DashboardUseCase) reportSkipped(ownerID string, d gasoil.Dashboard) {
	if d.SkippedDurations == 0 {
		return
	}
	uc.log.Warn().
		Str("owner_id", ownerID).
		Str("filter_date", d.FilterDate).
		Int("skipped", d.SkippedDurations).
		Msg("sesiones chrono con duración ilegible contadas como 0")
}
