//go:build !linux && !darwin

package sdunit

import "context"

// WatchUnit is not supported on this platform.
func (s *Service) WatchUnit(_ context.Context) (<-chan UnitEvent, WatchCleanupFunc, error) {
	return nil, nil, &OpError{Op: OpWatch, Kind: KindIO, Path: s.UnitDir, Err: ErrWatchUnsupported}
}
