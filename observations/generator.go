package observations

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	minReadingsPerDay = 4
	maxReadingsPerDay = 6

	minBloodGlucose   = 2.5
	bloodGlucoseRange = 27.5
	maxCarbIntake     = 240
	maxInsulinTenths  = 49
)

var (
	historiesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glucoguide_histories_generated_total",
		Help: "The number of synthetic histories written to the store",
	})
	historiesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glucoguide_histories_skipped_total",
		Help: "The number of history generations skipped because a history already existed",
	})
)

type generator struct {
	repo   Repository
	window Window
	logger *zap.SugaredLogger

	mu   sync.Mutex
	rand *rand.Rand
}

var _ Generator = &generator{}

func NewGenerator(repo Repository, cfg *Config, logger *zap.SugaredLogger) (Generator, error) {
	window, err := cfg.Window()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &generator{
		repo:   repo,
		window: window,
		logger: logger,
		rand:   rand.New(rand.NewSource(seed)),
	}, nil
}

// Generate writes a synthetic history for the user unless one already
// exists. The existence check and the write are not atomic; concurrent
// calls for the same new user may both write and the last write wins.
func (g *generator) Generate(ctx context.Context, username string) error {
	exists, err := g.repo.Exists(ctx, username)
	if err != nil {
		return fmt.Errorf("error checking history of %s: %w", username, err)
	}
	if exists {
		historiesSkipped.Inc()
		g.logger.Debugw("historical data already exists", "username", username)
		return nil
	}

	history := g.history()
	if err := g.repo.Put(ctx, username, history); err != nil {
		return fmt.Errorf("error storing history of %s: %w", username, err)
	}

	historiesGenerated.Inc()
	g.logger.Infow("generated historical data", "username", username, "observations", len(history))
	return nil
}

func (g *generator) GenerateAll(ctx context.Context, usernames []string) {
	for _, username := range usernames {
		if err := g.Generate(ctx, username); err != nil {
			g.logger.Errorw("error generating historical data", "username", username, zap.Error(err))
		}
	}
}

func (g *generator) history() []Observation {
	g.mu.Lock()
	defer g.mu.Unlock()

	history := make([]Observation, 0, g.window.Days()*maxReadingsPerDay)
	for day := g.window.Start; !day.After(g.window.End); day = day.AddDate(0, 0, 1) {
		date := day.Format(DateFormat)
		count := minReadingsPerDay + g.rand.Intn(maxReadingsPerDay-minReadingsPerDay+1)
		for i := 0; i < count; i++ {
			history = append(history, g.observation(date))
		}
	}
	return history
}

func (g *generator) observation(date string) Observation {
	hour := g.rand.Intn(24)
	minute := g.rand.Intn(60)
	glucose := decimal.NewFromFloat(g.rand.Float64()*bloodGlucoseRange + minBloodGlucose)

	return Observation{
		Date:         date,
		Time:         fmt.Sprintf("%02d:%02d", hour, minute),
		BloodGlucose: Text(glucose.StringFixed(1)),
		CarbIntake:   Number(float64(g.rand.Intn(maxCarbIntake + 1))),
		Insulin:      Number(float64(g.rand.Intn(maxInsulinTenths+1)) / 10),
	}
}
