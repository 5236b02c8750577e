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

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/oapi-codegen/runtime"
	"github.com/spf13/pflag"
	"github.com/unikorn-cloud/core/pkg/server/util"

	"github.com/nscaledev/product-acceptance/pkg/openapi"
	"github.com/nscaledev/product-acceptance/pkg/server/handler"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Options defines the HTTP server configuration.
type Options struct {
	// ListenAddress tells the server what to listen on, you shouldn't
	// need to change this, its already non-privileged and the default
	// matches the port the product service listens on.
	ListenAddress string

	// ReadTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadTimeout time.Duration

	// ReadHeaderTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadHeaderTimeout time.Duration

	// WriteTimeout defines how long we take to respond before we give up.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// Handler options.
	Handler *handler.Options
}

func NewOptions() *Options {
	return &Options{
		ListenAddress:     ":8000",
		ReadTimeout:       time.Second,
		ReadHeaderTimeout: time.Second,
		WriteTimeout:      10 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		Handler:           handler.NewOptions(),
	}
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", o.ListenAddress, "API listener address.")
	f.DurationVar(&o.ReadTimeout, "read-timeout", o.ReadTimeout, "How long to wait for the client to send the request body.")
	f.DurationVar(&o.ReadHeaderTimeout, "read-header-timeout", o.ReadHeaderTimeout, "How long to wait for the client to send headers.")
	f.DurationVar(&o.WriteTimeout, "write-timeout", o.WriteTimeout, "How long to wait for the API to respond to the client.")
	f.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", o.ShutdownTimeout, "How long to wait for in-flight requests on shutdown.")

	o.Handler.AddFlags(f)
}

// wrapper binds path parameters before handing off to the handler.
type wrapper struct {
	handler *handler.Handler
}

func (s *wrapper) DeleteProductsProductID(w http.ResponseWriter, r *http.Request) {
	var raw string

	options := runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	}

	if err := runtime.BindStyledParameterWithOptions("simple", "productID", chi.URLParam(r, "productID"), &raw, options); err != nil {
		util.WriteJSONResponse(w, r, http.StatusBadRequest, openapi.NewError(fmt.Sprintf("invalid format for parameter productID: %v", err)))
		return
	}

	var productID openapi.ProductID

	if err := productID.UnmarshalText([]byte(raw)); err != nil {
		util.WriteJSONResponse(w, r, http.StatusBadRequest, openapi.NewError(fmt.Sprintf("invalid format for parameter productID: %v", err)))
		return
	}

	s.handler.DeleteProductsProductID(w, r, productID)
}

// logging injects a request scoped logger and records the outcome.
func logging(logger logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := logger.WithValues("method", r.Method, "path", r.URL.Path, "requestID", middleware.GetReqID(r.Context()))

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(log.IntoContext(r.Context(), l)))

			l.V(1).Info("request complete", "status", ww.Status(), "duration", time.Since(start))
		})
	}
}

// NewRouter returns the product service routes.
func NewRouter(logger logr.Logger, h *handler.Handler) chi.Router {
	w := &wrapper{
		handler: h,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(logging(logger))
	router.Use(middleware.Recoverer)

	router.Get("/", h.GetRoot)

	// Both spellings are served, clients differ on trailing slashes.
	for _, prefix := range []string{"/products", "/products/"} {
		router.Post(prefix, h.PostProducts)
		router.Get(prefix, h.GetProducts)
	}

	router.Delete("/products/{productID}", w.DeleteProductsProductID)

	return router
}

// Server is a standalone product service.
type Server struct {
	options *Options
	server  *http.Server
}

func New(logger logr.Logger, options *Options) (*Server, error) {
	h, err := handler.New(options.Handler)
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:              options.ListenAddress,
		ReadTimeout:       options.ReadTimeout,
		ReadHeaderTimeout: options.ReadHeaderTimeout,
		WriteTimeout:      options.WriteTimeout,
		Handler:           NewRouter(logger, h),
	}

	s := &Server{
		options: options,
		server:  server,
	}

	return s, nil
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	logger := log.FromContext(ctx)

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.options.ShutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, "server shutdown error")
		}
	}()

	logger.Info("listening", "address", s.options.ListenAddress, "schema", s.options.Handler.Schema, "idField", s.options.Handler.IDField)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
