// Package service orchestrates maze generation: construct a grid,
// carve it, tag hazards and pickups, then hand the finished model to
// the world builder. Finished scenes are kept in an in-memory registry
// keyed by scene ID; nothing survives the process.
package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mazeforge/world-api/maze"
	"github.com/mazeforge/world-api/service/i"
	"github.com/mazeforge/world-api/world"
)

var (
	ErrSceneNotFound = errors.New("scene not found")
	ErrNilLogger     = errors.New("logger is required")
)

// MazeService implements i.MazeGenerator.
type MazeService struct {
	logger *logrus.Logger
	scenes map[uuid.UUID]*world.Scene
	sync.RWMutex
}

// NewMazeService creates a maze generation service.
func NewMazeService(logger *logrus.Logger) (i.MazeGenerator, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	return &MazeService{
		logger: logger,
		scenes: make(map[uuid.UUID]*world.Scene),
	}, nil
}

// Generate runs the full pipeline for one maze. The random source is
// seeded from req.Seed, or from the clock when the seed is zero, and
// is consumed in a fixed draw order, so a non-zero seed reproduces the
// scene's walls and tags exactly.
func (s *MazeService) Generate(_ context.Context, req i.GenerateRequest) (*world.Scene, error) {
	grid, err := maze.New(req.Width, req.Height, req.CellSize)
	if err != nil {
		return nil, err
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := maze.CellPosition{}
	if err := maze.Carve(grid, start, rng); err != nil {
		return nil, err
	}
	if err := maze.TagHazardsAndPickups(grid, start, req.HazardProb, req.PickupProb, rng); err != nil {
		return nil, err
	}

	scene, err := world.Build(grid, start, seed)
	if err != nil {
		return nil, err
	}

	s.Lock()
	s.scenes[scene.ID] = scene
	s.Unlock()

	s.logger.WithFields(logrus.Fields{
		"scene":   scene.ID,
		"width":   scene.Width,
		"height":  scene.Height,
		"seed":    seed,
		"hazards": len(scene.Hazards),
		"pickups": len(scene.Pickups),
	}).Info("Maze generated")

	return scene, nil
}

// ByID returns the scene with the given ID.
func (s *MazeService) ByID(_ context.Context, id uuid.UUID) (*world.Scene, error) {
	s.RLock()
	defer s.RUnlock()

	scene, ok := s.scenes[id]
	if !ok {
		return nil, ErrSceneNotFound
	}
	return scene, nil
}

// Drop forgets the scene with the given ID.
func (s *MazeService) Drop(_ context.Context, id uuid.UUID) error {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.scenes[id]; !ok {
		return ErrSceneNotFound
	}
	delete(s.scenes, id)
	s.logger.WithField("scene", id).Info("Scene dropped")
	return nil
}
