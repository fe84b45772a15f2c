package server

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math"
	"net"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/eaglebank/account-grpc/internal/accountpb"
	"github.com/eaglebank/account-grpc/internal/gateway"
	"github.com/eaglebank/account-grpc/internal/models"
	"github.com/eaglebank/account-grpc/internal/repository"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// ---- helpers ----

func startServer(t *testing.T, svc accountpb.AccountServiceServer) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv, _ := NewGRPCServer(svc)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to dial bufnet: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// lockedBuffer collects log output written from server goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func captureLog(t *testing.T) *lockedBuffer {
	t.Helper()
	buf := &lockedBuffer{}
	log.SetOutput(buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return buf
}

// waitForLog polls buf because the server logs after the client has its
// answer.
func waitForLog(t *testing.T, buf *lockedBuffer, match func(line string) bool) string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, line := range strings.Split(buf.String(), "\n") {
			if match(line) {
				return line
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("no matching log line in:\n%s", buf.String())
	return ""
}

type brokenStore struct{}

func (brokenStore) FindAll(context.Context) ([]models.Account, error) {
	return nil, fmt.Errorf("dial tcp 127.0.0.1:5433: connection refused")
}
func (brokenStore) FindByID(context.Context, string) (models.Account, bool, error) {
	return models.Account{}, false, fmt.Errorf("dial tcp 127.0.0.1:5433: connection refused")
}
func (brokenStore) Save(context.Context, models.Account) (models.Account, error) {
	panic("nil pointer in driver")
}

// ---- tests ----

func TestAccountServiceOverGRPC(t *testing.T) {
	store := repository.NewMemoryAccountRepository(
		models.Account{ID: "a", Solde: 10, DateCreation: "2024-01-01", Type: "COURANT"},
		models.Account{ID: "b", Solde: 20, DateCreation: "2024-01-02", Type: "EPARGNE"},
	)
	client := accountpb.NewAccountServiceClient(startServer(t, gateway.NewAccountGateway(store)))
	ctx := context.Background()

	saved, err := client.SaveAccount(ctx, &accountpb.SaveAccountRequest{Account: &accountpb.AccountInput{
		Solde: 30, DateCreation: "2024-01-03", Type: accountpb.AccountType_SAVINGS,
	}})
	if err != nil {
		t.Fatalf("SaveAccount: %v", err)
	}
	if saved.Account.Id == "" || saved.Account.Type != accountpb.AccountType_SAVINGS || saved.Account.Solde != 30 {
		t.Errorf("unexpected saved account %+v", saved.Account)
	}

	list, err := client.ListAccounts(ctx, &accountpb.ListAccountsRequest{})
	if err != nil {
		t.Fatalf("ListAccounts: %v", err)
	}
	if len(list.Accounts) != 3 {
		t.Errorf("expected 3 accounts, got %d", len(list.Accounts))
	}

	got, err := client.GetAccountById(ctx, &accountpb.GetAccountByIdRequest{Id: "a"})
	if err != nil {
		t.Fatalf("GetAccountById: %v", err)
	}
	want := &accountpb.Account{Id: "a", Solde: 10, DateCreation: "2024-01-01", Type: accountpb.AccountType_CURRENT}
	if !proto.Equal(got.Account, want) {
		t.Errorf("expected %v got %v", want, got.Account)
	}

	missing, err := client.GetAccountById(ctx, &accountpb.GetAccountByIdRequest{Id: "zzz"})
	if err != nil {
		t.Fatalf("GetAccountById (missing) should not fail: %v", err)
	}
	if missing.Account == nil || !proto.Equal(missing.Account, &accountpb.Account{}) {
		t.Errorf("expected default account, got %v", missing.Account)
	}

	stats, err := client.GetTotalBalance(ctx, &accountpb.GetTotalBalanceRequest{})
	if err != nil {
		t.Fatalf("GetTotalBalance: %v", err)
	}
	if !proto.Equal(stats.Stats, &accountpb.BalanceStats{Count: 3, Sum: 60, Average: 20}) {
		t.Errorf("unexpected stats %v", stats.Stats)
	}
}

func TestBalancesBeyondFloat32Range(t *testing.T) {
	store := repository.NewMemoryAccountRepository(
		models.Account{ID: "big", Solde: 1e39, DateCreation: "2024-01-01", Type: "EPARGNE"},
	)
	client := accountpb.NewAccountServiceClient(startServer(t, gateway.NewAccountGateway(store)))
	ctx := context.Background()

	for _, subtype := range []string{"", accountpb.CodecName} {
		t.Run("subtype="+subtype, func(t *testing.T) {
			var opts []grpc.CallOption
			if subtype != "" {
				opts = append(opts, grpc.CallContentSubtype(subtype))
			}

			list, err := client.ListAccounts(ctx, &accountpb.ListAccountsRequest{}, opts...)
			if err != nil {
				t.Fatalf("ListAccounts: %v", err)
			}
			if len(list.Accounts) != 1 || !math.IsInf(float64(list.Accounts[0].Solde), 1) {
				t.Errorf("expected one account with +Inf balance, got %v", list.Accounts)
			}

			stats, err := client.GetTotalBalance(ctx, &accountpb.GetTotalBalanceRequest{}, opts...)
			if err != nil {
				t.Fatalf("GetTotalBalance: %v", err)
			}
			if stats.Stats.Count != 1 || !math.IsInf(float64(stats.Stats.Sum), 1) {
				t.Errorf("expected count 1 and +Inf sum, got %v", stats.Stats)
			}
		})
	}
}

func TestPlainProtoClient(t *testing.T) {
	store := repository.NewMemoryAccountRepository(
		models.Account{ID: "a", Solde: 10, DateCreation: "2024-01-01", Type: "COURANT"},
	)
	conn := startServer(t, gateway.NewAccountGateway(store))

	// no content-subtype: the call travels as application/grpc
	out := &accountpb.GetTotalBalanceResponse{}
	if err := conn.Invoke(context.Background(), accountpb.AccountService_GetTotalBalance_FullMethodName, &accountpb.GetTotalBalanceRequest{}, out); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !proto.Equal(out.Stats, &accountpb.BalanceStats{Count: 1, Sum: 10, Average: 10}) {
		t.Errorf("unexpected stats %v", out.Stats)
	}
}

func TestCallLogReportsEncodeFailure(t *testing.T) {
	buf := captureLog(t)
	// proto3 strings must be valid UTF-8, so this response cannot be encoded
	store := repository.NewMemoryAccountRepository(models.Account{ID: "\xff", Type: "COURANT"})
	client := accountpb.NewAccountServiceClient(startServer(t, gateway.NewAccountGateway(store)))

	_, err := client.ListAccounts(context.Background(), &accountpb.ListAccountsRequest{})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}

	line := waitForLog(t, buf, func(line string) bool {
		return strings.Contains(line, accountpb.AccountService_ListAccounts_FullMethodName) &&
			strings.Contains(line, `"code":"Internal"`)
	})
	if !strings.Contains(line, "ERROR grpc call failed") || !strings.Contains(line, "marshal") {
		t.Errorf("expected the encode failure in the log line, got %s", line)
	}
}

func TestCallLogReportsSuccess(t *testing.T) {
	buf := captureLog(t)
	client := accountpb.NewAccountServiceClient(startServer(t, gateway.NewAccountGateway(repository.NewMemoryAccountRepository())))

	if _, err := client.GetTotalBalance(context.Background(), &accountpb.GetTotalBalanceRequest{}); err != nil {
		t.Fatalf("GetTotalBalance: %v", err)
	}
	line := waitForLog(t, buf, func(line string) bool {
		return strings.Contains(line, accountpb.AccountService_GetTotalBalance_FullMethodName) &&
			strings.Contains(line, `"code":"OK"`)
	})
	if !strings.Contains(line, "INFO grpc call") {
		t.Errorf("unexpected log line %s", line)
	}
}

func TestStoreFailuresBecomeInternal(t *testing.T) {
	client := accountpb.NewAccountServiceClient(startServer(t, gateway.NewAccountGateway(brokenStore{})))
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{name: "list", call: func() error {
			_, err := client.ListAccounts(ctx, &accountpb.ListAccountsRequest{})
			return err
		}},
		{name: "get", call: func() error {
			_, err := client.GetAccountById(ctx, &accountpb.GetAccountByIdRequest{Id: "a"})
			return err
		}},
		{name: "stats", call: func() error {
			_, err := client.GetTotalBalance(ctx, &accountpb.GetTotalBalanceRequest{})
			return err
		}},
		{name: "save panics", call: func() error {
			_, err := client.SaveAccount(ctx, &accountpb.SaveAccountRequest{})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			st, ok := status.FromError(err)
			if !ok || st.Code() != codes.Internal {
				t.Fatalf("[%s] expected Internal status, got %v", tt.name, err)
			}
			if st.Message() != "internal error" {
				t.Errorf("[%s] store detail leaked to client: %q", tt.name, st.Message())
			}
		})
	}
}

func TestHealthService(t *testing.T) {
	conn := startServer(t, gateway.NewAccountGateway(repository.NewMemoryAccountRepository()))
	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: accountpb.AccountService_ServiceDesc.ServiceName})
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("expected SERVING, got %v", resp.Status)
	}
}

func TestUnimplementedServer(t *testing.T) {
	client := accountpb.NewAccountServiceClient(startServer(t, accountpb.UnimplementedAccountServiceServer{}))
	_, err := client.ListAccounts(context.Background(), &accountpb.ListAccountsRequest{})
	if status.Code(err) != codes.Unimplemented {
		t.Errorf("expected Unimplemented, got %v", err)
	}
}

func TestReflectionServesAccountDescriptor(t *testing.T) {
	conn := startServer(t, gateway.NewAccountGateway(repository.NewMemoryAccountRepository()))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(ctx)
	if err != nil {
		t.Fatalf("reflection stream: %v", err)
	}
	defer stream.CloseSend()

	if err := stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{ListServices: "*"},
	}); err != nil {
		t.Fatalf("send list: %v", err)
	}
	resp, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv list: %v", err)
	}
	var names []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	if !strings.Contains(strings.Join(names, ","), "bank.v1.AccountService") {
		t.Errorf("expected bank.v1.AccountService in %v", names)
	}

	if err := stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{FileContainingSymbol: "bank.v1.AccountService"},
	}); err != nil {
		t.Fatalf("send symbol: %v", err)
	}
	resp, err = stream.Recv()
	if err != nil {
		t.Fatalf("recv symbol: %v", err)
	}
	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	if len(files) == 0 {
		t.Fatalf("no descriptor returned: %v", resp)
	}
	var fd descriptorpb.FileDescriptorProto
	if err := proto.Unmarshal(files[0], &fd); err != nil {
		t.Fatalf("decode descriptor: %v", err)
	}
	if fd.GetName() != "bank/v1/account.proto" || len(fd.GetService()) != 1 || len(fd.GetService()[0].GetMethod()) != 4 {
		t.Errorf("unexpected descriptor %v", &fd)
	}
}
