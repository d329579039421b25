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
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"dirpx.dev/pyerr/grpcx"
	"dirpx.dev/pyerr/httpx"
	"dirpx.dev/pyerr/mapper"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

type serveOpts struct {
	httpAddr        string
	grpcAddr        string
	shutdownTimeout time.Duration
}

func newServeCmd(a *app) *cobra.Command {
	o := &serveOpts{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the explainer over HTTP and gRPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			httpLis, err := net.Listen("tcp", o.httpAddr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", o.httpAddr, err)
			}
			grpcLis, err := net.Listen("tcp", o.grpcAddr)
			if err != nil {
				_ = httpLis.Close()
				return fmt.Errorf("failed to listen on %s: %w", o.grpcAddr, err)
			}
			return a.serve(cmd.Context(), httpLis, grpcLis, o.shutdownTimeout)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.httpAddr, "http-addr", ":8080", "HTTP listen address")
	f.StringVar(&o.grpcAddr, "grpc-addr", ":9090", "gRPC listen address")
	f.DurationVar(&o.shutdownTimeout, "shutdown-timeout", 5*time.Second, "graceful shutdown budget")
	return cmd
}

// serve runs both servers until ctx is done or one of them fails, then
// shuts both down.
func (a *app) serve(ctx context.Context, httpLis, grpcLis net.Listener, shutdownTimeout time.Duration) error {
	m, err := mapper.New()
	if err != nil {
		return err
	}

	hs := &http.Server{
		Handler:           httpx.NewHandler(a.svc, m, httpx.WithLogger(a.logger)).Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	gs := grpc.NewServer(grpc.UnaryInterceptor(grpcx.UnaryServerInterceptor(m, a.logger)))
	grpcx.Register(gs, grpcx.NewServer(a.svc, a.logger))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("http listening", zap.String("addr", httpLis.Addr().String()))
		if err := hs.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		a.logger.Info("grpc listening", zap.String("addr", grpcLis.Addr().String()))
		if err := gs.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		a.logger.Info("shutting down")

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			gs.GracefulStop()
			close(stopped)
		}()
		err := hs.Shutdown(sctx)
		select {
		case <-stopped:
		case <-sctx.Done():
			gs.Stop()
			<-stopped
		}
		return err
	})
	return g.Wait()
}
