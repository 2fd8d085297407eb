package config

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/themesync/internal/logging"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 150 * time.Millisecond

// Watch reloads the config file whenever it changes on disk. An invalid
// edit is logged and the previous configuration stays active. Events stop
// being handled once ctx is done.
func (m *Manager) Watch(ctx context.Context) error {
	log := logging.FromContext(logging.WithComponent(ctx, "config-watch"))

	m.mu.Lock()
	if m.watching {
		m.mu.Unlock()
		return nil
	}
	m.watching = true
	m.mu.Unlock()

	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if ctx.Err() != nil {
			return
		}
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file event")

		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(watchDebounce, func() {
			if ctx.Err() != nil {
				return
			}
			if err := m.ReloadNow(); err != nil {
				log.Warn().Err(err).Msg("config reload rejected, keeping previous settings")
			}
		})
	})
	m.viper.WatchConfig()
	log.Debug().Str("file", m.configFile).Msg("watching config file")
	return nil
}

// OnConfigChange registers a callback run after every successful reload.
// Callbacks receive their own copy of the configuration.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// ReloadNow re-reads the file and notifies callbacks, as a watch event would.
func (m *Manager) ReloadNow() error {
	m.mu.Lock()
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return err
	}
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		return err
	}
	current := m.config
	callbacks := slices.Clone(m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(current.clone())
	}
	return nil
}
