// AngelaMos | 2026
// service.go

package stats

import (
	"context"
	"sync"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Snapshot collects every statistics section concurrently and returns
// the first failure, if any. Sections are independent reads so there is
// no ordering requirement between them.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	var (
		snap Snapshot
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				mu.Lock()
				errs = append(errs, core.DatabaseError(name, err))
				mu.Unlock()
			}
		}()
	}

	run("farm statistics", func(ctx context.Context) error {
		out, err := s.repo.FarmStats(ctx)
		if err == nil {
			snap.Farms = out
		}
		return err
	})
	run("project statistics", func(ctx context.Context) error {
		out, err := s.repo.ProjectStats(ctx)
		if err == nil {
			snap.Projects = out
		}
		return err
	})
	run("animal statistics", func(ctx context.Context) error {
		out, err := s.repo.AnimalStats(ctx)
		if err == nil {
			snap.Animals = out
		}
		return err
	})
	run("finance statistics", func(ctx context.Context) error {
		out, err := s.repo.FinanceStats(ctx)
		if err == nil {
			snap.Finance = out
		}
		return err
	})
	run("soil statistics", func(ctx context.Context) error {
		out, err := s.repo.SoilStats(ctx)
		if err == nil {
			snap.Soil = out
		}
		return err
	})
	run("weather statistics", func(ctx context.Context) error {
		out, err := s.repo.WeatherStats(ctx)
		if err == nil {
			snap.Weather30d = out
		}
		return err
	})
	run("task statistics", func(ctx context.Context) error {
		out, err := s.repo.TaskStatusCounts(ctx)
		if err == nil {
			snap.Tasks = out
		}
		return err
	})
	run("user statistics", func(ctx context.Context) error {
		out, err := s.repo.UserStats(ctx)
		if err == nil {
			snap.Users = out
		}
		return err
	})
	run("employee statistics", func(ctx context.Context) error {
		out, err := s.repo.EmployeeStats(ctx)
		if err == nil {
			snap.Employees = out
		}
		return err
	})
	run("veterinary statistics", func(ctx context.Context) error {
		out, err := s.repo.VeterinaryStats(ctx)
		if err == nil {
			snap.Veterinary = out
		}
		return err
	})

	wg.Wait()

	if len(errs) > 0 {
		return nil, errs[0]
	}
	if snap.Tasks == nil {
		snap.Tasks = map[string]int{}
	}
	return &snap, nil
}
