package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdEntry   CommandType = "entrada"
	CmdExit    CommandType = "salida"
	CmdSummary CommandType = "resumen"
	CmdToday   CommandType = "hoy"
	CmdEdit    CommandType = "editar"
	CmdRecover CommandType = "recuperar"
	CmdSync    CommandType = "sincronizar"
	CmdTeam    CommandType = "equipo"
	CmdHelp    CommandType = "ayuda"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "entrada", "in":
		cmd.Type = CmdEntry
	case "salida", "out":
		cmd.Type = CmdExit
	case "resumen":
		cmd.Type = CmdSummary
	case "hoy":
		cmd.Type = CmdToday
	case "editar":
		cmd.Type = CmdEdit
	case "recuperar":
		cmd.Type = CmdRecover
	case "sincronizar", "sync":
		cmd.Type = CmdSync
	case "equipo":
		cmd.Type = CmdTeam
	case "ayuda", "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("comando desconocido: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Comandos disponibles:*

*Registro diario:*
• ` + "`/asistencia entrada [HH:MM]`" + ` - Registra tu entrada (hora actual si se omite)
• ` + "`/asistencia salida [HH:MM]`" + ` - Registra tu salida
• ` + "`/asistencia resumen [@usuario]`" + ` - Muestra horas acumuladas

*Administración:*
• ` + "`/asistencia hoy`" + ` - Muestra los registros del día
• ` + "`/asistencia editar @usuario FECHA campo=valor`" + ` - Corrige un registro (entrada, salida o estado)
• ` + "`/asistencia recuperar @usuario FECHA_FALTA FECHA_RECUPERACION`" + ` - Registra una falta recuperada
• ` + "`/asistencia sincronizar`" + ` - Fuerza una sincronización con la hoja de cálculo
• ` + "`/asistencia equipo agregar|quitar|listar [@usuario]`" + ` - Gestiona los administradores
• ` + "`/asistencia equipo eliminar @usuario`" + ` - Elimina a una persona y todos sus registros`
}
