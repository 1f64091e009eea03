package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cartazes <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Render price tags from a spreadsheet")
	fmt.Fprintln(w, "  doctor     Check fonts and system setup")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cartazes help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cartazes generate <planilha.xlsx> <modelo.png> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Draw one cartaz_<code>.png per spreadsheet row onto the template and")
	fmt.Fprintln(w, "merge them into cartazes_unificados.pdf.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  planilha.xlsx   First sheet: header row, then code, description, price_from,")
	fmt.Fprintln(w, "                  price_to, installment_price, branch, defect_note,")
	fmt.Fprintln(w, "                  treatment_note, warehouse")
	fmt.Fprintln(w, "  modelo.png      Template image (PNG, JPEG, GIF, BMP, TIFF)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>          Output directory (default: cartazes_prontos)")
	fmt.Fprintln(w, "      --zip                   Also write cartazes_individuais.zip")
	fmt.Fprintln(w, "      --order <s>             Page order: filename, rows")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rows:")
	fmt.Fprintln(w, "      --on-error <s>          Malformed rows: abort (default), skip")
	fmt.Fprintln(w, "      --currency-prefix <s>   Text before every price, e.g. \"R$ \"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fonts:")
	fmt.Fprintln(w, "      --font-dir <dir>        Directory searched first (repeatable)")
	fmt.Fprintln(w, "      --font-regular <file>   Regular font file (repeatable)")
	fmt.Fprintln(w, "      --font-bold <file>      Bold font file (repeatable)")
	fmt.Fprintln(w, "      --no-system-fonts       Skip the system font folders")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config:")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CARTAZES_CONFIG, CARTAZES_OUTPUT_DIR, CARTAZES_FONT_DIRS,")
	fmt.Fprintln(w, "  CARTAZES_CURRENCY_PREFIX, CARTAZES_ON_ERROR, CARTAZES_ORDER")
	fmt.Fprintln(w, "  A .env file in the working directory is read too.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cartazes doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report which font file each text role resolves to and whether the")
	fmt.Fprintln(w, "temp directory is writable. Fonts are looked up exactly as generate")
	fmt.Fprintln(w, "would: flags, then CARTAZES_FONT_DIRS, then the config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                  Print results as JSON")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "      --font-dir <dir>        Directory searched first (repeatable)")
	fmt.Fprintln(w, "      --font-regular <file>   Regular font file (repeatable)")
	fmt.Fprintln(w, "      --font-bold <file>      Bold font file (repeatable)")
	fmt.Fprintln(w, "      --no-system-fonts       Skip the system font folders")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: cartazes version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: cartazes help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
