package rabbitmq_common

import (
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reconnectInterval = 10 * time.Second

// ConnectionManager owns the single AMQP connection of the process and redials it when it drops.
type ConnectionManager struct {
	url        string
	connection *amqp.Connection
	mutex      sync.RWMutex
	stop       chan struct{}
	stopOnce   sync.Once
	Logger     Logger
}

var (
	managerInstance *ConnectionManager
	managerErr      error
	once            sync.Once
)

// GetManager returns the process-wide manager, dialing on the first call.
// A failed first dial is remembered and returned to every later caller.
func GetManager(url string, logger Logger) (*ConnectionManager, error) {
	once.Do(func() {
		if logger == nil {
			logger = NewNoopLogger()
		}
		if err := (Config{URL: url}).Validate(); err != nil {
			managerErr = err
			return
		}
		m := &ConnectionManager{url: url, Logger: logger, stop: make(chan struct{})}
		if _, err := m.getConnection(); err != nil {
			logger.Error(err, "Initial connection failed")
			managerErr = fmt.Errorf("initial connection failed: %w", err)
			return
		}
		go m.handleReconnect()
		managerInstance = m
	})

	if managerErr != nil {
		return nil, managerErr
	}
	return managerInstance, nil
}

func (m *ConnectionManager) getConnection() (*amqp.Connection, error) {
	m.mutex.RLock()
	if m.connection != nil && !m.connection.IsClosed() {
		m.mutex.RUnlock()
		return m.connection, nil
	}
	m.mutex.RUnlock()

	m.mutex.Lock()
	defer m.mutex.Unlock()

	// another goroutine may have redialed while we waited for the lock
	if m.connection != nil && !m.connection.IsClosed() {
		return m.connection, nil
	}

	m.Logger.Debug("Connecting to RabbitMQ")
	conn, err := amqp.Dial(m.url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial RabbitMQ: %w", err)
	}
	m.connection = conn
	m.Logger.Info("Connected to RabbitMQ")
	return conn, nil
}

// GetChannel opens a new channel on the shared connection.
func (m *ConnectionManager) GetChannel() (*amqp.Connection, *amqp.Channel, error) {
	conn, err := m.getConnection()
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return conn, nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	return conn, ch, nil
}

func (m *ConnectionManager) handleReconnect() {
	ticker := time.NewTicker(reconnectInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
		}

		m.mutex.RLock()
		healthy := m.connection == nil || !m.connection.IsClosed()
		m.mutex.RUnlock()
		if healthy {
			continue
		}

		m.Logger.Warn("Detected closed RabbitMQ connection, reconnecting")
		if _, err := m.getConnection(); err != nil {
			m.Logger.Error(err, "Reconnect failed")
		}
	}
}

// Close stops the reconnect loop and closes the shared connection.
func (m *ConnectionManager) Close() error {
	m.stopOnce.Do(func() { close(m.stop) })

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.connection == nil || m.connection.IsClosed() {
		m.Logger.Debug("Connection was already closed or not established")
		return nil
	}
	if err := m.connection.Close(); err != nil {
		m.Logger.Error(err, "Failed to close connection properly")
		return err
	}
	m.Logger.Debug("Connection closed")
	return nil
}
