package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long       string   // --output
	Short      string   // -o (empty if none)
	Type       flagType // completion type
	Desc       string   // help text
	Values     []string // for enum flags
	FileGlobs  []string // for file flags
	Repeatable bool     // may be given more than once
}

// takesValue reports whether the flag consumes the next word.
func (f flagDef) takesValue() bool {
	return f.Type != flagBool
}

// commandDef describes a command for completion.
type commandDef struct {
	Name      string
	Desc      string
	Flags     []flagDef
	FileGlobs []string // globs for positional file arguments, nil if none
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values    []string // enum values
	FileGlobs []string // file glob patterns
	IsDir     bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"on-error": {Values: []string{"abort", "skip"}},
	"order":    {Values: []string{"filename", "rows"}},

	// File flags with glob patterns
	"config":       {FileGlobs: []string{"*.yaml", "*.yml"}},
	"font-regular": {FileGlobs: fontGlobs},
	"font-bold":    {FileGlobs: fontGlobs},

	// Directory flags
	"output":   {IsDir: true},
	"font-dir": {IsDir: true},
}

var fontGlobs = []string{"*.ttf", "*.ttc", "*.otf"}

// generateArgGlobs matches the spreadsheet and template arguments.
var generateArgGlobs = []string{"*.xlsx", "*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.tif", "*.tiff"}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:       f.Name,
			Short:      f.Shorthand,
			Desc:       f.Usage,
			Repeatable: f.Value.Type() == "stringArray",
		}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case len(meta.FileGlobs) > 0:
				fd.Type = flagFile
				fd.FileGlobs = meta.FileGlobs
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:      "generate",
			Desc:      "Render tags and the combined PDF",
			Flags:     extractFlagsFromFlagSet(newGenerateFlagSet(&generateFlags{})),
			FileGlobs: generateArgGlobs,
		},
		{
			Name:  "doctor",
			Desc:  "Check font resolution",
			Flags: extractFlagsFromFlagSet(newDoctorFlagSet(&doctorFlags{})),
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var b strings.Builder
	switch shell {
	case ShellBash:
		writeBash(&b, getCommands())
	case ShellZsh:
		writeZsh(&b, getCommands())
	case ShellFish:
		writeFish(&b, getCommands())
	case ShellPowerShell:
		writePowerShell(&b, getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cartazes completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(cartazes completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(cartazes completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    cartazes completion fish > ~/.config/fish/completions/cartazes.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    cartazes completion powershell | Out-String | Invoke-Expression")
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func writeBash(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# bash completion for cartazes\n\n")
	b.WriteString("_cartazes_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 && c.FileGlobs == nil {
			continue
		}
		fmt.Fprintf(b, "    %s)\n", c.Name)
		b.WriteString("        case \"$prev\" in\n")
		for _, f := range c.Flags {
			if !f.takesValue() {
				continue
			}
			fmt.Fprintf(b, "            %s)\n", strings.Join(flagNames(f), "|"))
			fmt.Fprintf(b, "                COMPREPLY=(%s)\n", bashValueCompletion(f.Type, f.Values, f.FileGlobs))
			b.WriteString("                return\n")
			b.WriteString("                ;;\n")
		}
		b.WriteString("        esac\n")
		b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(allFlagNames(c.Flags), " "))
		b.WriteString("            return\n")
		b.WriteString("        fi\n")
		if c.FileGlobs != nil {
			fmt.Fprintf(b, "        COMPREPLY=(%s)\n", bashValueCompletion(flagFile, nil, c.FileGlobs))
		}
		b.WriteString("        ;;\n")
	}
	b.WriteString("    completion)\n")
	b.WriteString("        COMPREPLY=($(compgen -W \"bash zsh fish powershell\" -- \"$cur\"))\n")
	b.WriteString("        ;;\n")
	b.WriteString("    help)\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -o filenames -F _cartazes_completions cartazes\n")
}

func bashValueCompletion(t flagType, values, globs []string) string {
	switch t {
	case flagEnum:
		return fmt.Sprintf("$(compgen -W %q -- \"$cur\")", strings.Join(values, " "))
	case flagDir:
		return "$(compgen -d -- \"$cur\")"
	case flagFile:
		parts := []string{"compgen -d -- \"$cur\""}
		for _, g := range globs {
			parts = append(parts, fmt.Sprintf("compgen -f -X '!%s' -- \"$cur\"", g))
		}
		return "$(" + strings.Join(parts, "; ") + ")"
	}
	return ""
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func writeZsh(b *strings.Builder, cmds []commandDef) {
	b.WriteString("#compdef cartazes\n\n")
	b.WriteString("_cartazes() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=$words[2]\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case $cmd in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 && c.FileGlobs == nil {
			continue
		}
		fmt.Fprintf(b, "    %s)\n", c.Name)
		b.WriteString("        _arguments -s")
		for _, f := range c.Flags {
			fmt.Fprintf(b, " \\\n            %s", zshFlagSpec(f))
		}
		if c.FileGlobs != nil {
			fmt.Fprintf(b, " \\\n            '*:file:_files -g \"%s\"'", strings.Join(c.FileGlobs, " "))
		}
		b.WriteString("\n        ;;\n")
	}
	b.WriteString("    completion)\n")
	b.WriteString("        _values 'shell' bash zsh fish powershell\n")
	b.WriteString("        ;;\n")
	b.WriteString("    help)\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_cartazes \"$@\"\n")
}

func zshFlagSpec(f flagDef) string {
	desc := "[" + zshEscape(f.Desc) + "]"

	var action string
	switch f.Type {
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(":file:_files -g \"%s\"", strings.Join(f.FileGlobs, " "))
	case flagDir:
		action = ":directory:_files -/"
	case flagString:
		action = ":" + f.Long + ": "
	}

	repeat := ""
	if f.Repeatable {
		repeat = "*"
	}
	if f.Short == "" {
		return "'" + repeat + "--" + f.Long + desc + action + "'"
	}
	exclusive := ""
	if !f.Repeatable {
		exclusive = fmt.Sprintf("'(-%s --%s)'", f.Short, f.Long)
	}
	return fmt.Sprintf("%s%s{-%s,--%s}'%s%s'", exclusive, quoteIf(repeat), f.Short, f.Long, desc, action)
}

func quoteIf(s string) string {
	if s == "" {
		return ""
	}
	return "'" + s + "'"
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`)
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func writeFish(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# fish completion for cartazes\n\n")
	b.WriteString("function __fish_cartazes_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_cartazes_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $argv[1] = $cmd[2]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c cartazes -f\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "complete -c cartazes -n __fish_cartazes_needs_command -a %s -d %s\n", c.Name, fishQuote(c.Desc))
	}
	b.WriteString("\n")

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_cartazes_using_command %s'", c.Name)
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c cartazes -n %s", cond)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long + " -d " + fishQuote(f.Desc)
			switch f.Type {
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagString:
				line += " -x"
			}
			b.WriteString(line + "\n")
		}
		if c.FileGlobs != nil {
			fmt.Fprintf(b, "complete -c cartazes -n %s -F\n", cond)
		}
	}
	b.WriteString("complete -c cartazes -n '__fish_cartazes_using_command completion' -a 'bash zsh fish powershell'\n")
	fmt.Fprintf(b, "complete -c cartazes -n '__fish_cartazes_using_command help' -a '%s'\n", strings.Join(commandNames(cmds), " "))
}

func fishQuote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s) + "'"
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func writePowerShell(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# PowerShell completion for cartazes\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName cartazes -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $commandFlags = @{\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s' = @(%s)\n", c.Name, psList(allFlagNames(c.Flags)))
	}
	b.WriteString("    }\n")
	b.WriteString("    $flagValues = @{\n")
	for _, c := range cmds {
		for _, f := range c.Flags {
			if f.Type != flagEnum {
				continue
			}
			fmt.Fprintf(b, "        '--%s' = @(%s)\n", f.Long, psList(f.Values))
		}
	}
	b.WriteString("    }\n\n")
	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    if ($wordToComplete -ne '') { $words = $words[0..($words.Count - 2)] }\n\n")
	b.WriteString("    if ($words.Count -le 1) {\n")
	b.WriteString("        $candidates = $commandFlags.Keys\n")
	b.WriteString("    } elseif ($flagValues.ContainsKey($words[-1])) {\n")
	b.WriteString("        $candidates = $flagValues[$words[-1]]\n")
	b.WriteString("    } elseif ($words[1] -eq 'completion') {\n")
	b.WriteString("        $candidates = @('bash', 'zsh', 'fish', 'powershell')\n")
	b.WriteString("    } elseif ($commandFlags.ContainsKey($words[1])) {\n")
	b.WriteString("        $candidates = $commandFlags[$words[1]]\n")
	b.WriteString("    } else {\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | Sort-Object | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
}

func psList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + strings.ReplaceAll(s, "'", "''") + "'"
	}
	return strings.Join(quoted, ", ")
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// flagNames returns "-o" and "--output" style names for f.
func flagNames(f flagDef) []string {
	names := []string{"--" + f.Long}
	if f.Short != "" {
		names = append([]string{"-" + f.Short}, names...)
	}
	return names
}

func allFlagNames(flags []flagDef) []string {
	var names []string
	for _, f := range flags {
		names = append(names, flagNames(f)...)
	}
	return names
}
