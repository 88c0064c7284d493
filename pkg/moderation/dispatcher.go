package moderation

import (
	"errors"
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/casestore"
	"github.com/PancyStudios/PancyModGo/pkg/duration"
	"github.com/PancyStudios/PancyModGo/pkg/guard"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
)

// MaxTimeoutSeconds is the platform ceiling for timeout durations (28 days)
const MaxTimeoutSeconds = 28 * 24 * 3600

// Purge and slowmode bounds imposed by the platform
const (
	MaxPurgeCount      = 100
	MaxSlowmodeSeconds = 21600
)

// ErrNotFound is returned by an Executor when the target of the action
// does not exist on the platform (unknown ban, vanished user).
var ErrNotFound = errors.New("objetivo no encontrado")

// Executor performs the actual platform-level side effect. Implementations
// must not retry; a single error is surfaced as the failure outcome.
type Executor interface {
	Kick(tenantID, userID, reason string) error
	Ban(tenantID, userID, reason string) error
	Unban(tenantID, userID string) error
	Timeout(tenantID, userID string, until time.Time, reason string) error
	RemoveTimeout(tenantID, userID string) error
	Purge(channelID string, count int) error
	SetSlowmode(channelID string, seconds int) error
	Lock(tenantID, channelID string) error
	Unlock(tenantID, channelID string) error
}

// Notifier delivers a best-effort private message to the target.
// Failures are swallowed by the dispatcher.
type Notifier interface {
	Notify(userID, message string) error
}

// Telemetry receives an event for every completed action. Optional.
type Telemetry interface {
	ActionCompleted(ev ActionEvent)
}

// Service is the action dispatcher. It is constructed once at startup and
// passed to the adapters; there is no hidden global instance.
type Service struct {
	store     *casestore.Store
	exec      Executor
	notifier  Notifier
	telemetry Telemetry
}

// NewService creates the dispatcher over its collaborators. telemetry may
// be nil.
func NewService(store *casestore.Store, exec Executor, notifier Notifier, telemetry Telemetry) *Service {
	return &Service{
		store:     store,
		exec:      exec,
		notifier:  notifier,
		telemetry: telemetry,
	}
}

// Store exposes the case store for the read-only listings (warns,
// blacklist) that bypass the dispatch pipeline.
func (s *Service) Store() *casestore.Store {
	return s.store
}

// Dispatch runs one moderation request through the pipeline and resolves
// every failure path into an Outcome. There is no retry and no rollback:
// once the executor succeeded the platform side effect stands even if the
// audit write fails afterwards.
func (s *Service) Dispatch(req Request) Outcome {
	switch req.Kind {
	case KindKick, KindBan, KindTimeout, KindRemoveTimeout, KindWarn:
		return s.dispatchMember(req)
	case KindUnban:
		return s.dispatchUnban(req)
	case KindRemoveWarn:
		return s.dispatchRemoveWarn(req)
	case KindSetLogChannel:
		return s.dispatchSetLogChannel(req)
	case KindPurge, KindSlowmode, KindLock, KindUnlock:
		return s.dispatchChannel(req)
	default:
		return invalidInput("❌ Acción desconocida.")
	}
}

// dispatchMember handles the member-targeted side-effecting actions:
// guard first, then notification, then executor, then (warn only) the
// audit write.
func (s *Service) dispatchMember(req Request) Outcome {
	// Input validation happens before any side effect, the guard included
	var until time.Time
	if req.Kind == KindTimeout {
		spec, err := duration.Parse(req.Duration)
		if err != nil {
			return invalidInput("❌ Duración inválida. Usa: 30s, 5m, 1h, 1d")
		}
		if spec.Seconds() > MaxTimeoutSeconds {
			return invalidInput("❌ La duración máxima de un aislamiento es de 28 días.")
		}
		until = time.Now().Add(spec.Duration())
	}

	if decision := guard.Check(req.Actor, req.Target, req.Bot); !decision.Allowed {
		return authDenied(decision.Reason.Message())
	}

	// Best-effort DM before the action lands. Delivery failure never
	// blocks nor fails the dispatch.
	if err := s.notifier.Notify(req.Target.ID, s.notifyMessage(req)); err != nil {
		logger.Debug(fmt.Sprintf("No se pudo notificar a %s: %v", req.Target.ID, err), "Dispatcher")
	}

	var err error
	switch req.Kind {
	case KindKick:
		err = s.exec.Kick(req.TenantID, req.Target.ID, req.Reason)
	case KindBan:
		err = s.exec.Ban(req.TenantID, req.Target.ID, req.Reason)
	case KindTimeout:
		err = s.exec.Timeout(req.TenantID, req.Target.ID, until, req.Reason)
	case KindRemoveTimeout:
		err = s.exec.RemoveTimeout(req.TenantID, req.Target.ID)
	case KindWarn:
		// A warning has no platform side effect, only the audit record
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Fallo del ejecutor en %s: %v", req.Kind, err), "Dispatcher")
		return executorFailed(err)
	}

	outcome := completed()
	if req.Kind == KindWarn {
		warning, err := s.store.AddWarning(req.TenantID, req.Target.ID, req.Reason, req.Actor.ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Fallo guardando advertencia: %v", err), "Dispatcher")
			return storageFailed(err)
		}
		outcome.Warning = &warning
	}

	s.publish(req)
	return outcome
}

func (s *Service) dispatchUnban(req Request) Outcome {
	if req.TargetID == "" {
		return invalidInput("❌ Debes especificar la ID del usuario a desbanear.")
	}

	if err := s.exec.Unban(req.TenantID, req.TargetID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound("❌ Usuario no encontrado o no baneado.")
		}
		logger.Error(fmt.Sprintf("Fallo del ejecutor en unban: %v", err), "Dispatcher")
		return executorFailed(err)
	}

	s.publish(req)
	return completed()
}

func (s *Service) dispatchRemoveWarn(req Request) Outcome {
	if req.WarningID < 1 {
		return invalidInput("❌ La ID de la advertencia debe ser un número mayor que cero.")
	}

	removed, err := s.store.RemoveWarning(req.TenantID, req.targetID(), req.WarningID)
	if err != nil {
		logger.Error(fmt.Sprintf("Fallo eliminando advertencia: %v", err), "Dispatcher")
		return storageFailed(err)
	}
	if !removed {
		return notFound("❌ No se encontró una advertencia con esa ID.")
	}

	s.publish(req)
	return completed()
}

func (s *Service) dispatchSetLogChannel(req Request) Outcome {
	if req.LogChannelID == "" {
		return invalidInput("❌ Debes especificar un canal.")
	}

	if err := s.store.SetLogChannel(req.TenantID, req.LogChannelID); err != nil {
		logger.Error(fmt.Sprintf("Fallo guardando canal de logs: %v", err), "Dispatcher")
		return storageFailed(err)
	}

	s.publish(req)
	return completed()
}

// dispatchChannel handles the channel-scoped actions, which skip the
// per-member hierarchy checks entirely.
func (s *Service) dispatchChannel(req Request) Outcome {
	var err error
	switch req.Kind {
	case KindPurge:
		if req.Count < 1 || req.Count > MaxPurgeCount {
			return invalidInput("❌ La cantidad debe estar entre 1 y 100.")
		}
		err = s.exec.Purge(req.ChannelID, req.Count)
	case KindSlowmode:
		if req.Seconds < 0 || req.Seconds > MaxSlowmodeSeconds {
			return invalidInput("❌ El modo lento debe estar entre 0 y 21600 segundos.")
		}
		err = s.exec.SetSlowmode(req.ChannelID, req.Seconds)
	case KindLock:
		err = s.exec.Lock(req.TenantID, req.ChannelID)
	case KindUnlock:
		err = s.exec.Unlock(req.TenantID, req.ChannelID)
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Fallo del ejecutor en %s: %v", req.Kind, err), "Dispatcher")
		return executorFailed(err)
	}

	s.publish(req)
	return completed()
}

// notifyMessage builds the DM text describing the action and reason
func (s *Service) notifyMessage(req Request) string {
	reason := req.Reason
	if reason == "" {
		reason = "Sin razón especificada"
	}

	switch req.Kind {
	case KindKick:
		return fmt.Sprintf("👢 Has sido expulsado del servidor.\n**Razón:** %s", reason)
	case KindBan:
		return fmt.Sprintf("🔨 Has sido baneado del servidor.\n**Razón:** %s", reason)
	case KindTimeout:
		return fmt.Sprintf("🔇 Has sido aislado temporalmente (%s).\n**Razón:** %s", req.Duration, reason)
	case KindRemoveTimeout:
		return "🔊 Tu aislamiento ha sido retirado."
	case KindWarn:
		return fmt.Sprintf("⚠️ Has recibido una advertencia.\n**Razón:** %s", reason)
	default:
		return ""
	}
}

// publish emits the telemetry event for a completed action
func (s *Service) publish(req Request) {
	if s.telemetry == nil {
		return
	}
	s.telemetry.ActionCompleted(ActionEvent{
		Kind:     req.Kind.String(),
		TenantID: req.TenantID,
		ActorID:  req.Actor.ID,
		TargetID: req.targetID(),
		Reason:   req.Reason,
		Time:     time.Now().UTC(),
	})
}
