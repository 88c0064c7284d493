package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/config"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// CreateEvalCommand crea el comando /dev eval
func CreateEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Evalúa código Go y muestra estructuras internas (Peligroso)",
		"dev",
		evalHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "codigo",
			Description: "Código o expresión Go a evaluar",
			Required:    true,
		},
	)
}

func evalHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		start := time.Now()

		if !isDev(ctx.User().ID) {
			ctx.ReplyEphemeral("❌ **Acceso Denegado:** Este comando es solo para desarrolladores.")
			return
		}

		// Deferimos la respuesta porque compilar el script puede tomar unos milisegundos
		ctx.Defer()

		// Eliminar bloques de código de markdown si existen (```go ... ```)
		code := ctx.GetStringOption("codigo")
		code = strings.TrimPrefix(code, "```go")
		code = strings.TrimPrefix(code, "```")
		code = strings.TrimSuffix(code, "```")
		code = strings.TrimSpace(code)

		i := interp.New(interp.Options{})

		// Cargar librería estándar de Go (fmt, strings, os, etc.)
		if err := i.Use(stdlib.Symbols); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error cargando stdlib: %v", err))
			return
		}

		// Inyección de variables del bot para usarlas como 'Ctx', 'Bot', etc.
		botExports := map[string]reflect.Value{
			"Ctx":     reflect.ValueOf(ctx),
			"Bot":     reflect.ValueOf(ctx.Client),
			"Session": reflect.ValueOf(ctx.Session),
			"Config":  reflect.ValueOf(config.Get()),
		}

		if err := i.Use(interp.Exports{
			"github.com/PancyStudios/PancyModGo/internal/commands/dev/dev": botExports,
		}); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error registrando variables: %v", err))
			return
		}

		_, err := i.Eval(`import . "github.com/PancyStudios/PancyModGo/internal/commands/dev"`)
		if err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error importando variables: %v", err))
			return
		}

		res, err := i.Eval(code)

		var output string
		if err != nil {
			output = fmt.Sprintf("❌ **Error de Ejecución:**\n```go\n%v\n```", err)
		} else {
			var resStr string
			if res.IsValid() {
				// %#v muestra la estructura interna completa (campos, punteros)
				resStr = fmt.Sprintf("%#v", res.Interface())
			} else {
				resStr = "nil"
			}
			if len(resStr) > 1900 {
				resStr = resStr[:1900] + "... (truncado)"
			}

			output = fmt.Sprintf("✅ **Resultado:**\n```go\n%s\n```", resStr)
		}

		elapsed := time.Since(start)
		logger.Debug(fmt.Sprintf("Eval completado en %s", elapsed), "DevEval")

		ctx.EditReply(output)
	}()
	return nil
}

// isDev checks the executing user against the configured developer ID
func isDev(userID string) bool {
	cfg := config.Get()
	return cfg.DevUserID != "" && userID == cfg.DevUserID
}
