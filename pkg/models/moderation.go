// Package models contains the domain data structures shared across the bot.
package models

import "time"

// Warning representa una advertencia individual persistida de un miembro
type Warning struct {
	ID        int       `json:"id"`
	Reason    string    `json:"reason"`
	Moderator string    `json:"mod"`
	Time      time.Time `json:"time"`
}

// WarnMap es el documento completo de advertencias de un tenant:
// memberId -> lista de advertencias en orden de inserción
type WarnMap map[string][]Warning

// ModSettings es el documento de configuración por tenant
type ModSettings struct {
	LogChannel string `json:"log_channel,omitempty"`
}

// Member describes a guild participant with the attributes the
// authorization guard needs: relative rank and identity flags.
type Member struct {
	ID      string
	Rank    int
	IsOwner bool
	IsBot   bool
}

// BlacklistEntry es una fila del listado de miembros con advertencias
type BlacklistEntry struct {
	MemberID string
	Count    int
}
