/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"dirpx.dev/pyerr/adapter"
	"github.com/spf13/cobra"
)

const noExplanation = "no explanation available"

func newExplainCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "explain [message...]",
		Short: "Explain one error message",
		Long: `Explain classifies an interpreter error message and prints a localized
header and details. The message is read from the arguments, joined by
spaces, or from standard input when no arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				msg = string(b)
			}

			res, err := a.svc.Explain(msg, "")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(adapter.ToExplanation(res))
			}
			if !res.Explained {
				_, err = fmt.Fprintln(out, noExplanation)
				return err
			}
			_, err = fmt.Fprintf(out, "%s\n\n%s\n", res.Rendered.Header, res.Rendered.Details)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the explanation as JSON")
	return cmd
}
