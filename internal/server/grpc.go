package server

import (
	"context"
	"fmt"

	"github.com/eaglebank/account-grpc/internal/accountpb"
	"github.com/eaglebank/account-grpc/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/stats"
	"google.golang.org/grpc/status"
)

// NewGRPCServer builds a server with the account service, the standard health
// service and server reflection registered. The health status of the account
// service starts as SERVING.
func NewGRPCServer(svc accountpb.AccountServiceServer, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append([]grpc.ServerOption{
		grpc.StatsHandler(CallLogger{}),
		grpc.UnaryInterceptor(FaultInterceptor()),
	}, opts...)
	srv := grpc.NewServer(opts...)

	accountpb.RegisterAccountServiceServer(srv, svc)

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(accountpb.AccountService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, healthSrv)

	reflection.Register(srv)

	return srv, healthSrv
}

type methodKey struct{}

// CallLogger logs one line per server call once the status has been written,
// so failures to encode the response are reported with their real code.
type CallLogger struct{}

func (CallLogger) TagRPC(ctx context.Context, info *stats.RPCTagInfo) context.Context {
	return context.WithValue(ctx, methodKey{}, info.FullMethodName)
}

func (CallLogger) HandleRPC(ctx context.Context, s stats.RPCStats) {
	end, ok := s.(*stats.End)
	if !ok || end.IsClient() {
		return
	}

	method, _ := ctx.Value(methodKey{}).(string)
	fields := logger.Fields{
		"method":     method,
		"code":       status.Code(end.Error).String(),
		"durationMs": end.EndTime.Sub(end.BeginTime).Milliseconds(),
	}
	if end.Error != nil {
		logger.Error("grpc call failed", end.Error, fields)
		return
	}
	logger.Info("grpc call", fields)
}

func (CallLogger) TagConn(ctx context.Context, _ *stats.ConnTagInfo) context.Context {
	return ctx
}

func (CallLogger) HandleConn(context.Context, stats.ConnStats) {}

// FaultInterceptor turns handler errors and panics into a bare Internal
// status. Errors that already carry a gRPC status pass through unchanged.
func FaultInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("grpc handler panic", fmt.Errorf("%v", r), logger.Fields{"method": info.FullMethod})
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
		}()

		resp, err = handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := status.FromError(err); ok {
			return nil, err
		}
		logger.Error("grpc handler failed", err, logger.Fields{"method": info.FullMethod})
		return nil, status.Error(codes.Internal, "internal error")
	}
}
