package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/kassasync/internal/terminal/auth"
	"github.com/iudanet/kassasync/internal/terminal/conflict"
	"github.com/iudanet/kassasync/internal/terminal/data"
	"github.com/iudanet/kassasync/internal/terminal/iocli"
	"github.com/iudanet/kassasync/internal/terminal/storage"
	"github.com/iudanet/kassasync/internal/terminal/syncer"
)

// Runner запускает цикл синхронизации. Реализуется координатором.
type Runner interface {
	RunCycle(ctx context.Context) (*syncer.CycleResult, error)
}

// backgroundRunner фоновая служба, работающая до отмены контекста
type backgroundRunner interface {
	Run(ctx context.Context)
}

// Cli обрабатывает команды оператора терминала
type Cli struct {
	authService     auth.Service
	dataService     data.Service
	conflictService conflict.Service
	coordinator     Runner
	outbox          storage.OutboxStorage
	metadata        storage.MetadataStorage
	monitor         backgroundRunner
	scheduler       backgroundRunner
	io              iocli.IO
}

// New создает обработчик команд терминала
func New(
	authService auth.Service,
	dataService data.Service,
	conflictService conflict.Service,
	coordinator Runner,
	outbox storage.OutboxStorage,
	metadata storage.MetadataStorage,
	monitor backgroundRunner,
	scheduler backgroundRunner,
	io iocli.IO,
) *Cli {
	return &Cli{
		authService:     authService,
		dataService:     dataService,
		conflictService: conflictService,
		coordinator:     coordinator,
		outbox:          outbox,
		metadata:        metadata,
		monitor:         monitor,
		scheduler:       scheduler,
		io:              io,
	}
}

// Run выполняет одну команду терминала
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "product":
		return c.runProduct(ctx, args)
	case "stock":
		return c.runStock(ctx, args)
	case "customer":
		return c.runCustomer(ctx, args)
	case "sale":
		return c.runSale(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "watch":
		return c.runWatch(ctx)
	case "conflicts":
		return c.runConflicts(ctx)
	case "resolve":
		return c.runResolve(ctx, args)
	case "failed":
		return c.runFailed(ctx)
	case "retry":
		return c.runRetry(ctx, args)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() {
	PrintUsage(c.io)
}

// PrintUsage печатает справку по командам в указанный вывод
func PrintUsage(io iocli.IO) {
	io.Println("Usage: kassasync <command> [arguments]")
	io.Println()
	io.Println("Session:")
	io.Println("  register              Register a new operator")
	io.Println("  login                 Log in and store the session")
	io.Println("  logout                Remove the stored session")
	io.Println("  status                Show session and sync status")
	io.Println()
	io.Println("Data:")
	io.Println("  product add|list|delete   Manage the product catalog")
	io.Println("  stock set|list            Manage inventory levels")
	io.Println("  customer add|list         Manage customers")
	io.Println("  sale add|list             Record and list transactions")
	io.Println()
	io.Println("Synchronization:")
	io.Println("  sync                  Run one sync cycle now")
	io.Println("  watch                 Keep syncing in the background")
	io.Println("  conflicts             List pending conflicts")
	io.Println("  resolve <type> <id> <local|remote|merged>")
	io.Println("                        Resolve a pending conflict")
	io.Println("  failed                List permanently failed changes")
	io.Println("  retry <type> <id>     Re-queue a failed change")
}

// requireAuth проверяет наличие сессии перед выполнением команды
func (c *Cli) requireAuth(ctx context.Context) error {
	ok, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if !ok {
		return fmt.Errorf("not authenticated. Please run 'kassasync login' first")
	}
	return nil
}
