package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"github.com/teamtrack/attendance-bot/internal/config"
	"github.com/teamtrack/attendance-bot/internal/domain"
	"github.com/teamtrack/attendance-bot/internal/domain/contract"
	"github.com/teamtrack/attendance-bot/internal/domain/entity"
	slackcmd "github.com/teamtrack/attendance-bot/internal/slack"
	"github.com/teamtrack/attendance-bot/pkg/timeutil"
)

type SlackHandler struct {
	attendance    contract.AttendanceService
	sync          contract.Synchronizer
	signingSecret string
	loc           *time.Location
}

func New(attendance contract.AttendanceService, sync contract.Synchronizer, cfg *config.Config) *SlackHandler {
	return &SlackHandler{
		attendance:    attendance,
		sync:          sync,
		signingSecret: cfg.SlackSigningSecret,
		loc:           cfg.Location(),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdEntry:
		return h.handleEntry(ctx, cmd, slashCmd)
	case slackcmd.CmdExit:
		return h.handleExit(ctx, cmd, slashCmd)
	case slackcmd.CmdSummary:
		return h.handleSummary(ctx, cmd, slashCmd)
	case slackcmd.CmdToday:
		return h.handleToday(ctx, slashCmd)
	case slackcmd.CmdEdit:
		return h.handleEdit(ctx, cmd, slashCmd)
	case slackcmd.CmdRecover:
		return h.handleRecover(ctx, cmd, slashCmd)
	case slackcmd.CmdSync:
		return h.handleSync(ctx, slashCmd)
	case slackcmd.CmdTeam:
		return h.handleTeam(ctx, cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Comando no reconocido")
	}
}

func (h *SlackHandler) handleEntry(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	externalID, ok := numericID(slashCmd.UserID)
	if !ok {
		return h.createErrorResponse("No pude reconocer tu identificador de usuario")
	}

	clock := h.nowClock()
	if len(cmd.Args) > 0 {
		clock = cmd.Args[0]
	}

	if err := h.attendance.RecordEntry(ctx, externalID, h.today(), clock, ""); err != nil {
		return h.serviceError(err, "Error al registrar la entrada")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> registró su *entrada* a las %s", slashCmd.UserID, clock),
	}
}

func (h *SlackHandler) handleExit(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	externalID, ok := numericID(slashCmd.UserID)
	if !ok {
		return h.createErrorResponse("No pude reconocer tu identificador de usuario")
	}

	clock := h.nowClock()
	if len(cmd.Args) > 0 {
		clock = cmd.Args[0]
	}

	closed, err := h.attendance.RecordExit(ctx, externalID, h.today(), clock)
	if err != nil {
		return h.serviceError(err, "Error al registrar la salida")
	}
	if !closed {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "⚠️ No tienes una entrada abierta hoy. Registra primero tu entrada con `/asistencia entrada`.",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("👋 <@%s> registró su *salida* a las %s", slashCmd.UserID, clock),
	}
}

func (h *SlackHandler) handleSummary(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	target := slashCmd.UserID
	if len(cmd.Args) > 0 {
		target = mentionUserID(cmd.Args[0])
	}

	externalID, ok := numericID(target)
	if !ok {
		return h.createErrorResponse("No pude reconocer el identificador del usuario")
	}

	summary, err := h.attendance.ComputeSummary(ctx, externalID)
	if err != nil {
		return h.serviceError(err, "Error al calcular el resumen")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Resumen de %s*\n", summary.FullName)
	fmt.Fprintf(&b, "• Horas base: %s\n", timeutil.FormatClock(summary.BaseSeconds))
	fmt.Fprintf(&b, "• Horas registradas: %s\n", timeutil.FormatClock(summary.WorkedSeconds))
	fmt.Fprintf(&b, "• *Total acumulado: %s*", timeutil.FormatClock(summary.TotalSeconds))

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleToday(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	if msg := h.requireAdmin(ctx, slashCmd.UserID); msg != nil {
		return msg
	}

	rows, err := h.attendance.DayOverview(ctx, h.today())
	if err != nil {
		return h.serviceError(err, "Error al consultar el día")
	}

	if len(rows) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "Aún no hay registros de asistencia para hoy.",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Asistencia de hoy (%s):*\n", h.today())
	for _, row := range rows {
		fmt.Fprintf(&b, "• *%s*: %s - %s (%s)\n",
			row.FullName, clockOrDash(row.EntryTime), clockOrDash(row.ExitTime), row.Status)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

// handleEdit corrects a record: /asistencia editar @usuario FECHA campo=valor.
// Accepted fields are entrada, salida and estado.
func (h *SlackHandler) handleEdit(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if msg := h.requireAdmin(ctx, slashCmd.UserID); msg != nil {
		return msg
	}
	if len(cmd.Args) < 3 {
		return h.createErrorResponse("Uso: `/asistencia editar @usuario FECHA campo=valor`")
	}

	externalID, ok := numericID(mentionUserID(cmd.Args[0]))
	if !ok {
		return h.createErrorResponse("No pude reconocer el identificador del usuario")
	}
	date := cmd.Args[1]

	var edit entity.RecordEdit
	for _, arg := range cmd.Args[2:] {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return h.createErrorResponse(fmt.Sprintf("Formato inválido: `%s`. Usa campo=valor", arg))
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(key) {
		case "entrada":
			edit.EntryTime = &value
		case "salida":
			edit.ExitTime = &value
		case "estado":
			status, ok := canonicalStatus(value)
			if !ok {
				return h.createErrorResponse(fmt.Sprintf("Estado inválido: `%s`. Válidos: %s",
					value, strings.Join(domain.StatusNames, ", ")))
			}
			edit.Status = &status
		default:
			return h.createErrorResponse(fmt.Sprintf("Campo desconocido: `%s`. Usa entrada, salida o estado", key))
		}
	}

	if err := h.attendance.EditRecord(ctx, externalID, date, edit); err != nil {
		return h.serviceError(err, "Error al editar el registro")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Registro del %s actualizado.", date),
	}
}

func (h *SlackHandler) handleRecover(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if msg := h.requireAdmin(ctx, slashCmd.UserID); msg != nil {
		return msg
	}
	if len(cmd.Args) < 3 {
		return h.createErrorResponse("Uso: `/asistencia recuperar @usuario FECHA_FALTA FECHA_RECUPERACION`")
	}

	externalID, ok := numericID(mentionUserID(cmd.Args[0]))
	if !ok {
		return h.createErrorResponse("No pude reconocer el identificador del usuario")
	}

	if err := h.attendance.RegisterRecovery(ctx, externalID, cmd.Args[1], cmd.Args[2]); err != nil {
		return h.serviceError(err, "Error al registrar la recuperación")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Recuperación registrada: falta del %s recuperada el %s.", cmd.Args[1], cmd.Args[2]),
	}
}

func (h *SlackHandler) handleSync(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	if msg := h.requireAdmin(ctx, slashCmd.UserID); msg != nil {
		return msg
	}

	// Slack expects a response within three seconds, so the cycle runs in the
	// background and reports through the logs.
	go h.sync.RunSync(context.Background())

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "🔄 Sincronización con la hoja de cálculo iniciada.",
	}
}

func (h *SlackHandler) handleTeam(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Uso: `/asistencia equipo agregar|quitar|listar|eliminar [@usuario]`")
	}

	switch cmd.Args[0] {
	case "listar", "list":
		admins, err := h.attendance.ListAdmins(ctx)
		if err != nil {
			return h.serviceError(err, "Error al listar administradores")
		}
		if len(admins) == 0 {
			return &slack.Msg{
				ResponseType: slack.ResponseTypeEphemeral,
				Text:         "No hay administradores registrados.",
			}
		}
		var b strings.Builder
		b.WriteString("*Administradores:*\n")
		for _, admin := range admins {
			fmt.Fprintf(&b, "• %s (%s)\n", admin.ReferenceName, admin.Role)
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         b.String(),
		}

	case "agregar", "add":
		if msg := h.requireAdmin(ctx, slashCmd.UserID); msg != nil {
			return msg
		}
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Uso: `/asistencia equipo agregar @usuario [rol]`")
		}
		target := mentionUserID(cmd.Args[1])
		externalID, ok := numericID(target)
		if !ok {
			return h.createErrorResponse("No pude reconocer el identificador del usuario")
		}
		role := ""
		if len(cmd.Args) > 2 {
			role = strings.Join(cmd.Args[2:], " ")
		}
		if err := h.attendance.AddAdmin(ctx, externalID, target, role); err != nil {
			return h.serviceError(err, "Error al agregar administrador")
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("✅ <@%s> ahora es administrador.", target),
		}

	case "quitar", "remove":
		if msg := h.requireAdmin(ctx, slashCmd.UserID); msg != nil {
			return msg
		}
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Uso: `/asistencia equipo quitar @usuario`")
		}
		target := mentionUserID(cmd.Args[1])
		externalID, ok := numericID(target)
		if !ok {
			return h.createErrorResponse("No pude reconocer el identificador del usuario")
		}
		if err := h.attendance.RemoveAdmin(ctx, externalID); err != nil {
			return h.serviceError(err, "Error al quitar administrador")
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("✅ <@%s> ya no es administrador.", target),
		}

	case "eliminar":
		// Removes the person and, through the cascade, every attendance and
		// recovery row. The roster sync will re-create anyone still listed.
		if msg := h.requireAdmin(ctx, slashCmd.UserID); msg != nil {
			return msg
		}
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Uso: `/asistencia equipo eliminar @usuario`")
		}
		target := mentionUserID(cmd.Args[1])
		externalID, ok := numericID(target)
		if !ok {
			return h.createErrorResponse("No pude reconocer el identificador del usuario")
		}
		if err := h.attendance.DeletePerson(ctx, externalID); err != nil {
			return h.serviceError(err, "Error al eliminar al usuario")
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("🗑️ <@%s> y todos sus registros fueron eliminados.", target),
		}

	default:
		return h.createErrorResponse("Uso: `/asistencia equipo agregar|quitar|listar|eliminar [@usuario]`")
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) requireAdmin(ctx context.Context, slackUserID string) *slack.Msg {
	externalID, ok := numericID(slackUserID)
	if !ok {
		return h.createErrorResponse("No pude reconocer tu identificador de usuario")
	}

	isAdmin, err := h.attendance.IsAdmin(ctx, externalID)
	if err != nil {
		return h.serviceError(err, "Error al verificar permisos")
	}
	if !isAdmin {
		return h.createErrorResponse("Este comando es solo para administradores")
	}
	return nil
}

func (h *SlackHandler) serviceError(err error, fallback string) *slack.Msg {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return h.createErrorResponse("Usuario no registrado. Pide que te agreguen a la hoja de registro.")
	case errors.Is(err, domain.ErrInvalidStatus):
		return h.createErrorResponse(fmt.Sprintf("Estado inválido. Válidos: %s", strings.Join(domain.StatusNames, ", ")))
	case errors.Is(err, domain.ErrInvalidInput):
		return h.createErrorResponse("Dato inválido. Revisa el formato de fecha (AAAA-MM-DD) y hora (HH:MM).")
	default:
		log.Printf("Handler: %s: %v", fallback, err)
		return h.createErrorResponse(fallback)
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) today() string {
	return time.Now().In(h.loc).Format(domain.DateLayout)
}

func (h *SlackHandler) nowClock() string {
	return time.Now().In(h.loc).Format(domain.ClockLayout)
}

// mentionUserID extracts the user id from a mention like <@U123|name>.
func mentionUserID(mention string) string {
	id := strings.TrimSpace(mention)
	id = strings.TrimPrefix(id, "<@")
	id = strings.TrimSuffix(id, ">")
	if name := strings.IndexByte(id, '|'); name >= 0 {
		id = id[:name]
	}
	return id
}

// numericID reduces a chat-platform user id to its digits. The store keys
// persons by numeric identifier, matching the roster sheet.
func numericID(raw string) (int64, bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func canonicalStatus(input string) (string, bool) {
	for _, name := range domain.StatusNames {
		if strings.EqualFold(input, name) {
			return name, true
		}
	}
	// Allow the underscored single-word form, e.g. falta_injustificada.
	normalized := strings.ReplaceAll(input, "_", " ")
	for _, name := range domain.StatusNames {
		if strings.EqualFold(normalized, name) {
			return name, true
		}
	}
	return "", false
}

func clockOrDash(clock *string) string {
	if clock == nil || *clock == "" {
		return "-"
	}
	return *clock
}
