// Package console drives the interactive bakery menus over a line-oriented reader and writer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikolayk812/bakery-pos/internal/auth"
	"github.com/nikolayk812/bakery-pos/internal/domain"
	"github.com/nikolayk812/bakery-pos/internal/service"
	"go.uber.org/zap"
)

type Shop interface {
	Browse(ctx context.Context) ([]domain.Product, error)
	Varieties(ctx context.Context, productID int32) ([]domain.Variety, error)
	AddLine(ctx context.Context, cart *domain.Cart, productID, quantity int32, variety int) (domain.CartLine, error)
}

type Till interface {
	Checkout(ctx context.Context, customer domain.Customer, cart domain.Cart) (*domain.Receipt, error)
}

type Admin interface {
	AddProduct(ctx context.Context, in service.ProductInput) error
	UpdateCost(ctx context.Context, id int32, cost int64) error
	AddVariety(ctx context.Context, variety domain.Variety) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListLowStock(ctx context.Context) ([]domain.Product, error)
	ListSales(ctx context.Context, limit int32) ([]domain.AuditEntry, error)
	PriceChart(ctx context.Context, path string) error
}

type Authenticator interface {
	Verify(password string) error
}

type Services struct {
	Shop  Shop
	Till  Till
	Admin Admin
	Auth  Authenticator
}

const salesLogLimit = 20

// errLeave ends the current menu loop.
var errLeave = errors.New("leave menu")

type Console struct {
	in        *bufio.Reader
	out       io.Writer
	services  Services
	chartPath string
	logger    *zap.Logger
}

func New(in io.Reader, out io.Writer, services Services, chartPath string, logger *zap.Logger) (*Console, error) {
	switch {
	case in == nil:
		return nil, fmt.Errorf("in is nil")
	case out == nil:
		return nil, fmt.Errorf("out is nil")
	case services.Shop == nil:
		return nil, fmt.Errorf("shop is nil")
	case services.Till == nil:
		return nil, fmt.Errorf("till is nil")
	case services.Admin == nil:
		return nil, fmt.Errorf("admin is nil")
	case services.Auth == nil:
		return nil, fmt.Errorf("auth is nil")
	case logger == nil:
		return nil, fmt.Errorf("logger is nil")
	}

	return &Console{
		in:        bufio.NewReader(in),
		out:       out,
		services:  services,
		chartPath: chartPath,
		logger:    logger,
	}, nil
}

// Run shows the main menu until the user exits or the input is closed.
func (c *Console) Run(ctx context.Context) error {
	c.banner()

	err := c.loop(ctx, "MAIN MENU", c.mainCommands())
	switch {
	case err == nil:
		c.println("Thank you for using Bakery Management System!")
		return nil
	case errors.Is(err, io.EOF):
		c.println("\nGoodbye!")
		return nil
	default:
		return err
	}
}

type command struct {
	title string
	run   func(ctx context.Context) error
}

// loop prints commands keyed 1..len(commands) and dispatches the chosen one
// until a command returns errLeave.
func (c *Console) loop(ctx context.Context, title string, commands map[int]command) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("\n%s\n", title)
		for key := 1; key <= len(commands); key++ {
			c.printf("%d. %s\n", key, commands[key].title)
		}

		choice, err := c.readInt("\nEnter your choice: ")
		if err != nil {
			if !errors.Is(err, domain.ErrValidation) {
				return err
			}
			c.println("Invalid input! Please enter a number.")
			continue
		}

		cmd, ok := commands[int(choice)]
		if !ok {
			c.printf("Invalid choice! Please select 1-%d.\n", len(commands))
			continue
		}

		err = cmd.run(ctx)
		switch {
		case err == nil:
		case errors.Is(err, errLeave):
			return nil
		case errors.Is(err, io.EOF), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			c.report(err)
		}
	}
}

func (c *Console) mainCommands() map[int]command {
	return map[int]command{
		1: {title: "Admin Login", run: c.adminLogin},
		2: {title: "Customer", run: c.customer},
		3: {title: "Exit", run: func(context.Context) error { return errLeave }},
	}
}

// report tells the user why an operation was aborted.
func (c *Console) report(err error) {
	var stockErr *domain.InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		c.printf("Sorry! Only %d units available.\n", stockErr.Available)
	case errors.Is(err, domain.ErrValidation):
		c.printf("Invalid input: %s\n", reason(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrNotFound):
		c.printf("Not found: %s\n", reason(err, domain.ErrNotFound))
	case errors.Is(err, domain.ErrAlreadyExists):
		c.printf("Already exists: %s\n", reason(err, domain.ErrAlreadyExists))
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.println("Invalid password!")
	case errors.Is(err, auth.ErrDisabled):
		c.println("Admin login is disabled.")
	case errors.Is(err, domain.ErrPersistence):
		c.logger.Error("storage failure", zap.Error(err))
		c.println("Storage error, nothing was changed. Please try again.")
	default:
		c.logger.Error("operation failed", zap.Error(err))
		c.println("Something went wrong. Please try again.")
	}
}

// reason drops the call chain and kind prefix from err, leaving the detail.
func reason(err, kind error) string {
	msg := err.Error()
	prefix := kind.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}

func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readInt returns a validation error for input that is not a whole number.
func (c *Console) readInt(prompt string) (int64, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, domain.Validationf("%q is not a number", line)
	}
	return n, nil
}

func (c *Console) readInt32(prompt string) (int32, error) {
	n, err := c.readInt(prompt)
	if err != nil {
		return 0, err
	}
	if n < -1<<31 || n > 1<<31-1 {
		return 0, domain.Validationf("%d is out of range", n)
	}
	return int32(n), nil
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
