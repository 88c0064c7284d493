// Package mqtt publishes moderation telemetry over an MQTT broker.
// Every completed moderation action becomes one event on the actions topic
// so external dashboards can follow what the bot is doing.
package mqtt

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/google/uuid"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// actionEnvelope wraps an action event with its correlation ID
type actionEnvelope struct {
	CorrelationID string                 `json:"correlationId"`
	Event         moderation.ActionEvent `json:"event"`
}

// Publisher sends moderation events to the broker. It implements
// moderation.Telemetry and keeps publishing fire-and-forget: a broker
// outage never blocks a dispatch.
type Publisher struct {
	client   mqtt.Client
	topic    string
	clientID string
	mu       sync.Mutex
}

var (
	publisher *Publisher
	once      sync.Once
)

// Init initializes the global telemetry publisher
func Init(host, port, username, password, clientID, environment string) *Publisher {
	once.Do(func() {
		publisher = NewPublisher(host, port, username, password, clientID, environment)
	})
	return publisher
}

// Get returns the global telemetry publisher
func Get() *Publisher {
	return publisher
}

// NewPublisher connects to the broker and returns the publisher
func NewPublisher(host, port, username, password, clientID, environment string) *Publisher {
	p := &Publisher{
		topic:    fmt.Sprintf("pancymod/%s/actions", environment),
		clientID: clientID,
	}

	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Success(fmt.Sprintf("Conectado al broker MQTT como %s", clientID), "MQTT")
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("Conexión MQTT perdida: %v", err), "MQTT")
		})

	p.client = mqtt.NewClient(opts)

	token := p.client.Connect()
	if token.Wait() && token.Error() != nil {
		logger.Error(fmt.Sprintf("Error de conexión MQTT: %v", token.Error()), "MQTT")
	}

	return p
}

// ActionCompleted publishes one completed moderation action. Errors are
// logged and dropped; telemetry is never load-bearing.
func (p *Publisher) ActionCompleted(ev moderation.ActionEvent) {
	if p.client == nil || !p.client.IsConnected() {
		return
	}

	envelope := actionEnvelope{
		CorrelationID: uuid.New().String(),
		Event:         ev,
	}

	jsonData, err := json.Marshal(envelope)
	if err != nil {
		logger.Error(fmt.Sprintf("Error codificando evento de telemetría: %v", err), "MQTT")
		return
	}

	go func() {
		token := p.client.Publish(p.topic, 0, false, jsonData)
		token.Wait()
		if token.Error() != nil {
			logger.Warn(fmt.Sprintf("Error publicando evento '%s': %v", ev.Kind, token.Error()), "MQTT")
		}
	}()
}

// IsConnected returns true if connected to the broker
func (p *Publisher) IsConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.client != nil && p.client.IsConnected()
}

// Destroy closes the MQTT connection
func (p *Publisher) Destroy() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
		logger.System("Conexión MQTT cerrada exitosamente.", "MQTT")
	}
}
