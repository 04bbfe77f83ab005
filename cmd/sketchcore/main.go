/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"sketchcore/internal/config"
	applog "sketchcore/internal/log"
	"sketchcore/internal/version"
)

func usage() {
	fmt.Println("sketchcore — selection geometry development shell")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sketchcore version|-v|--version    Show version")
	fmt.Println("  sketchcore config [<file>]         Print the effective configuration")
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println(version.String())
			return
		case "config":
			path := ""
			if len(args) > 2 {
				path = args[2]
			}
			cfg, err := config.Load(path)
			if err != nil {
				l.Error("config load failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			os.Stdout.Write(out)
			return
		default:
			usage()
			os.Exit(2)
		}
	}
	usage()
}
