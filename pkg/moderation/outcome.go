package moderation

import "github.com/PancyStudios/PancyModGo/pkg/models"

// Status is the halting point a dispatch ended at
type Status int

const (
	StatusCompleted Status = iota
	StatusAuthDenied
	StatusInvalidInput
	StatusNotFound
	StatusExecutorFailed
	StatusStorageFailed
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusAuthDenied:
		return "auth-denied"
	case StatusInvalidInput:
		return "invalid-input"
	case StatusNotFound:
		return "not-found"
	case StatusExecutorFailed:
		return "executor-failed"
	case StatusStorageFailed:
		return "storage-failed"
	default:
		return "unknown"
	}
}

// Outcome is the single typed result of a dispatch. Message carries the
// user-facing text for denial and input errors; Warning is set for
// completed warn actions; Err is the underlying cause for executor and
// storage failures.
type Outcome struct {
	Status  Status
	Message string
	Warning *models.Warning
	Err     error
}

// Completed reports whether the action ran through the whole pipeline
func (o Outcome) Completed() bool {
	return o.Status == StatusCompleted
}

func completed() Outcome {
	return Outcome{Status: StatusCompleted}
}

func authDenied(message string) Outcome {
	return Outcome{Status: StatusAuthDenied, Message: message}
}

func invalidInput(message string) Outcome {
	return Outcome{Status: StatusInvalidInput, Message: message}
}

func notFound(message string) Outcome {
	return Outcome{Status: StatusNotFound, Message: message}
}

func executorFailed(err error) Outcome {
	return Outcome{Status: StatusExecutorFailed, Message: "❌ La plataforma rechazó la acción.", Err: err}
}

func storageFailed(err error) Outcome {
	return Outcome{Status: StatusStorageFailed, Message: "❌ Error al acceder a los datos de moderación.", Err: err}
}
