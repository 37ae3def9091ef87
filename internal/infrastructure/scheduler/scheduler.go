// Package scheduler ejecuta tareas periódicas en segundo plano, desacopladas
// del camino de atención de requests.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/eustachekamala/virunga-inventory/pkg/logger"
)

// Scheduler envoltorio de cron para las tareas de fondo del servicio.
type Scheduler struct {
	cron *cron.Cron
	log  *logger.Logger
}

// New construye el scheduler sin arrancarlo.
func New(log *logger.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), log: log}
}

// Every programa fn cada interval. El pánico de una ejecución se recupera y
// se registra; la tarea sigue programada.
func (s *Scheduler) Every(interval time.Duration, name string, fn func()) error {
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error().Interface("panic", r).Str("job", name).Msg("pánico en tarea programada")
			}
		}()
		fn()
	})
	if err != nil {
		return fmt.Errorf("programar tarea %s: %w", name, err)
	}
	s.log.Info().Str("job", name).Dur("interval", interval).Msg("tarea programada")
	return nil
}

// Start arranca el scheduler en su propia goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop detiene el scheduler y espera a que terminen las ejecuciones en curso.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
