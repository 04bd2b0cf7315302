package main

import (
	"fmt"
	"io"
)

var commandHelp = map[string]string{
	CmdNameRender:   HelpRenderUsage,
	CmdNameValidate: HelpValidateUsage,
	CmdNamePreview:  HelpPreviewUsage,
	CmdNameServe:    HelpServeUsage,
	CmdNameVersion:  HelpVersionUsage,
	CmdNameHelp:     HelpHelpUsage,
}

func runHelp(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeSuccess
	}

	cmd := args[0]
	usage, ok := commandHelp[cmd]
	if !ok {
		fmt.Fprintf(stdout, FmtErrorWithDetail, ErrMsgUnknownCommand, cmd)
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeUsageError
	}

	fmt.Fprintln(stdout, usage)
	return ExitCodeSuccess
}
