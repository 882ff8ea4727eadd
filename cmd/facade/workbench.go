// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/facade-works/facade/lib/cmderr"
	"github.com/facade-works/facade/lib/introspect"
)

// workbenchDoc describes the workbench itself; its summary becomes
// the top-level help description.
const workbenchDoc = `
The facade workbench: a small collection of utilities exposed
through the method bridge.
`

const greetDoc = `
Greet someone by name.

INPUT:

- ` + "``name``" + ` -- who to greet
- ` + "``loud``" + ` -- shout the greeting instead of speaking it
`

const connectDoc = `
Print the connection plan for a remote host.

Extra ` + "``--key=value``" + ` options are passed through to the
connection verbatim.

INPUT:

- ` + "``host``" + ` -- the host to connect to
- ` + "``port``" + ` -- the TCP port on the remote host
`

const sumDoc = `
Add up integer values and print the total.

INPUT:

- ` + "``values``" + ` -- zero or more integers
`

const noteDoc = `
Record a note in the workbench notebook.

INPUT:

- ` + "``text``" + ` -- the note body
- ` + "``pin_or_p``" + ` -- keep the note at the top of the notebook
`

const legacySyncDoc = `
Synchronize the notebook with the legacy store.

INPUT:

- ` + "``dry_run``" + ` -- report what would change without writing
`

// newWorkbench constructs the demo target. The notebook lives under
// the user's home directory; when no home directory can be resolved
// the workbench is unavailable and the caller prints the notice.
func newWorkbench() (*introspect.Object, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	notebook := filepath.Join(home, ".facade", "notebook")

	return &introspect.Object{
		DocComment: workbenchDoc,
		Specs: []introspect.MethodSpec{
			{
				MethodName: "greet",
				DocComment: greetDoc,
				Parameters: []introspect.Param{
					{Name: "name"},
					{Name: "loud", Default: false, HasDefault: true},
				},
				Func: func(args []any, kwargs map[string]any) (any, error) {
					greeting := fmt.Sprintf("Hello, %v.", args[0])
					if loud, _ := kwargs["loud"].(bool); loud {
						greeting = strings.ToUpper(greeting)
					}
					fmt.Println(greeting)
					return nil, nil
				},
			},
			{
				MethodName: "connect",
				DocComment: connectDoc,
				Parameters: []introspect.Param{
					{Name: "host"},
					{Name: "port", Default: 22, HasDefault: true},
				},
				KeywordBagName: "opts",
				Func: func(args []any, kwargs map[string]any) (any, error) {
					port := kwargs["port"]
					fmt.Printf("connect %v:%v\n", args[0], port)
					keys := make([]string, 0, len(kwargs))
					for key := range kwargs {
						if key != "port" {
							keys = append(keys, key)
						}
					}
					sort.Strings(keys)
					for _, key := range keys {
						fmt.Printf("  %s=%v\n", key, kwargs[key])
					}
					return nil, nil
				},
			},
			{
				MethodName:   "sum",
				DocComment:   sumDoc,
				VariadicName: "values",
				Func: func(args []any, kwargs map[string]any) (any, error) {
					total := 0
					for _, value := range args {
						n, ok := value.(int)
						if !ok {
							return nil, cmderr.Usage("sum: %v is not an integer", value)
						}
						total += n
					}
					fmt.Println(total)
					return total, nil
				},
			},
			{
				MethodName: "take_note",
				DocComment: noteDoc,
				Parameters: []introspect.Param{
					{Name: "text"},
					{Name: "pin_or_p", Default: false, HasDefault: true},
				},
				Func: func(args []any, kwargs map[string]any) (any, error) {
					if err := os.MkdirAll(filepath.Dir(notebook), 0o755); err != nil {
						return nil, err
					}
					file, err := os.OpenFile(notebook, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
					if err != nil {
						return nil, err
					}
					defer file.Close()
					line := fmt.Sprintf("%v", args[0])
					if pinned, _ := kwargs["pin_or_p"].(bool); pinned {
						line = "! " + line
					}
					_, err = fmt.Fprintln(file, line)
					return nil, err
				},
			},
			{
				MethodName: "legacy_sync",
				DocComment: legacySyncDoc,
				Parameters: []introspect.Param{
					{Name: "dry_run", Default: false, HasDefault: true},
				},
				Func: func(args []any, kwargs map[string]any) (any, error) {
					if dry, _ := kwargs["dry_run"].(bool); dry {
						fmt.Println("legacy store is already up to date")
						return nil, nil
					}
					fmt.Println("synchronized with legacy store")
					return nil, nil
				},
			},
			{
				// Undocumented on purpose: the bridge must skip it.
				MethodName: "scratch",
				Func: func(args []any, kwargs map[string]any) (any, error) {
					return nil, nil
				},
			},
		},
	}, nil
}
