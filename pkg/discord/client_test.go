package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestNewClientIntents verifies the session requests the gateway intents
// the moderation surface needs
func TestNewClientIntents(t *testing.T) {
	client, err := NewClient("test-token")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	intents := client.Session.Identify.Intents
	wanted := []struct {
		name   string
		intent discordgo.Intent
	}{
		{"Guilds", discordgo.IntentsGuilds},
		{"GuildMessages", discordgo.IntentsGuildMessages},
		{"GuildMembers", discordgo.IntentsGuildMembers},
		{"GuildModeration", discordgo.IntentGuildModeration},
	}

	for _, w := range wanted {
		if intents&w.intent == 0 {
			t.Errorf("intent %s not requested", w.name)
		}
	}
}

// TestHasPermissions verifies the gate requires every bit of a multi-bit
// requirement and that administrators always pass
func TestHasPermissions(t *testing.T) {
	required := int64(discordgo.PermissionKickMembers | discordgo.PermissionBanMembers)

	cases := []struct {
		name    string
		member  int64
		allowed bool
	}{
		{"all required bits", required, true},
		{"one of two bits", discordgo.PermissionKickMembers, false},
		{"no bits", 0, false},
		{"unrelated bits", discordgo.PermissionManageChannels, false},
		{"administrator", discordgo.PermissionAdministrator, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := hasPermissions(c.member, required); got != c.allowed {
				t.Errorf("hasPermissions(%#x, %#x) = %v, want %v", c.member, required, got, c.allowed)
			}
		})
	}
}

// TestNewClientHandlers verifies the command and event handlers are wired
func TestNewClientHandlers(t *testing.T) {
	client, err := NewClient("test-token")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.CommandHandler == nil {
		t.Error("CommandHandler is nil")
	}
	if client.EventHandler == nil {
		t.Error("EventHandler is nil")
	}
	if client.Commands == nil {
		t.Error("Commands collection is nil")
	}
}
