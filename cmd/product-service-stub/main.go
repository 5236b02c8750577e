/*
Copyright 2026 Nscale.

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
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/nscaledev/product-acceptance/pkg/constants"
	"github.com/nscaledev/product-acceptance/pkg/server"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"
)

func main() {
	options := server.NewOptions()
	options.AddFlags(pflag.CommandLine)

	zapOptions := zap.Options{}
	zapOptions.BindFlags(goflag.CommandLine)

	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	logger := log.Log.WithName("init")
	logger.Info("service starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx := log.IntoContext(signals.SetupSignalHandler(), log.Log.WithName("server"))

	s, err := server.New(log.Log.WithName("http"), options)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := s.Run(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
