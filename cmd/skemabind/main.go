package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "new":
		newCmd(os.Args[2:])
	case "templates":
		templatesCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "skemabind CLI\n\nUsage:\n  skemabind new [--template NAME] [--module PATH] [--generator BIN] [--yes]\n  skemabind templates\n\nScaffolds a schema-validated project by delegating to an external generator\n(gonew by default; override with --generator or SKEMABIND_GENERATOR).")
}

func templatesCmd(args []string) {
	fs := flag.NewFlagSet("templates", flag.ExitOnError)
	_ = fs.Parse(args)
	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, "skemabind:", err)
		os.Exit(1)
	}
	for _, t := range reg.Templates {
		fmt.Printf("%-12s %-45s %s\n", t.Name, t.Repo, t.Description)
	}
}

func newCmd(args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	var tmplName, module, generator string
	var yes bool
	fs.StringVar(&tmplName, "template", "", "template name from the registry")
	fs.StringVar(&module, "module", "", "module path for the new project")
	fs.StringVar(&generator, "generator", "", "generator binary (default: $SKEMABIND_GENERATOR or gonew)")
	fs.BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	_ = fs.Parse(args)

	if generator == "" {
		generator = os.Getenv("SKEMABIND_GENERATOR")
	}
	if generator == "" {
		generator = "gonew"
	}

	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, "skemabind:", err)
		os.Exit(1)
	}

	in := bufio.NewScanner(os.Stdin)
	if tmplName == "" {
		fmt.Println("Available templates:")
		for i, t := range reg.Templates {
			fmt.Printf("  %d) %-12s %s\n", i+1, t.Name, t.Description)
		}
		tmplName = prompt(in, "Template (name or number): ")
		if n, err := strconv.Atoi(tmplName); err == nil && n >= 1 && n <= len(reg.Templates) {
			tmplName = reg.Templates[n-1].Name
		}
	}
	tmpl, ok := reg.find(tmplName)
	if !ok {
		fmt.Fprintf(os.Stderr, "skemabind: unknown template %q (run `skemabind templates`)\n", tmplName)
		os.Exit(2)
	}

	if module == "" {
		module = prompt(in, "Module path (e.g. example.com/myapi): ")
	}
	if module == "" {
		fmt.Fprintln(os.Stderr, "skemabind: module path is required")
		os.Exit(2)
	}

	if !yes {
		answer := prompt(in, fmt.Sprintf("Create %s from %s? [y/N] ", module, tmpl.Repo))
		if a := strings.ToLower(answer); a != "y" && a != "yes" {
			fmt.Fprintln(os.Stderr, "skemabind: aborted")
			os.Exit(1)
		}
	}

	cmd := exec.Command(generator, tmpl.Repo, module)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "skemabind: %s failed: %v\n", generator, err)
		os.Exit(1)
	}
	fmt.Printf("Created %s from template %s.\n", module, tmpl.Name)
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}
