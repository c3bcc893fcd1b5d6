package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/huntermobile/hunter-go/config"
	"github.com/huntermobile/hunter-go/internal/domain"
	"github.com/huntermobile/hunter-go/internal/infrastructure/docstore"
	"github.com/huntermobile/hunter-go/internal/infrastructure/hunterapi"
	"github.com/huntermobile/hunter-go/internal/infrastructure/session"
	"github.com/huntermobile/hunter-go/internal/usecase"
)

const usageText = `hunter — comparador de preços

Usage:
  hunter search <termo>                     busca combinada via API
  hunter products                           catálogo local (Kabum + Mercado Livre)
  hunter register -nome -email -senha       cria uma conta
  hunter login -email -senha                autentica e guarda a sessão
  hunter logout                             descarta a sessão local
  hunter alert create|list|update|delete    alertas de preço
  hunter feedback send|list|update|delete   feedbacks
  hunter user update|delete                 conta do usuário
`

// app holds the composed services. The session store is constructed once
// here and handed to every service that needs it.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	accounts *usecase.AccountService
	search   *usecase.CatalogService
	catalog  func() (*usecase.CatalogService, func(), error)
}

func main() {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		fatal(fmt.Errorf("failed to load configuration: %w", err))
	}

	sessionPath := cfg.Session.Path
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			fatal(fmt.Errorf("cannot resolve session path: %w", err))
		}
	}
	sessions := session.NewFileStore(sessionPath)
	api := hunterapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout)

	a := &app{
		cfg:      cfg,
		logger:   logger,
		accounts: usecase.NewAccountService(api, sessions, logger),
		// Search never touches the document store.
		search: usecase.NewCatalogService(api, nil, nil, logger),
		// The docstore connection is only opened for commands that read
		// the local catalog.
		catalog: func() (*usecase.CatalogService, func(), error) {
			store, err := docstore.Open(cfg.Docstore.DSN())
			if err != nil {
				return nil, nil, err
			}
			svc := usecase.NewCatalogService(api, store, domain.DefaultPartitions, logger)
			return svc, func() { store.Close() }, nil
		},
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fatal(err)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "search":
		return a.runSearch(ctx, args)
	case "products":
		return a.runProducts(ctx)
	case "register":
		return a.runRegister(ctx, args)
	case "login":
		return a.runLogin(ctx, args)
	case "logout":
		if err := a.accounts.Logout(); err != nil {
			return err
		}
		fmt.Println("Sessão encerrada.")
		return nil
	case "alert":
		return a.runAlert(ctx, args)
	case "feedback":
		return a.runFeedback(ctx, args)
	case "user":
		return a.runUser(ctx, args)
	case "help", "-h", "--help":
		fmt.Print(usageText)
		return nil
	default:
		fmt.Fprint(os.Stderr, usageText)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (a *app) runSearch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: hunter search <termo>")
	}
	query := args[0]

	products, err := a.search.Search(ctx, query)
	if err != nil {
		return err
	}
	printProducts(products)
	return nil
}

func (a *app) runProducts(ctx context.Context) error {
	catalog, closeStore, err := a.catalog()
	if err != nil {
		return err
	}
	defer closeStore()

	printProducts(catalog.Browse(ctx))
	return nil
}

func (a *app) runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	nome := fs.String("nome", "", "nome completo")
	email := fs.String("email", "", "endereço de e-mail")
	senha := fs.String("senha", "", "senha")
	fs.Parse(args)

	if *nome == "" || *email == "" || *senha == "" {
		return fmt.Errorf("usage: hunter register -nome <nome> -email <email> -senha <senha>")
	}

	msg, err := a.accounts.Register(ctx, *nome, *email, *senha)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func (a *app) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "endereço de e-mail")
	senha := fs.String("senha", "", "senha")
	fs.Parse(args)

	if *email == "" || *senha == "" {
		return fmt.Errorf("usage: hunter login -email <email> -senha <senha>")
	}

	if err := a.accounts.Login(ctx, *email, *senha); err != nil {
		return err
	}
	fmt.Println("Login realizado com sucesso.")
	return nil
}

func (a *app) runAlert(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: hunter alert create|list|update|delete")
	}

	switch args[0] {
	case "create":
		fs := flag.NewFlagSet("alert create", flag.ExitOnError)
		produto := fs.String("produto", "", "nome do produto")
		preco := fs.Float64("preco", 0, "preço desejado")
		fs.Parse(args[1:])
		if *produto == "" || *preco <= 0 {
			return fmt.Errorf("usage: hunter alert create -produto <nome> -preco <valor>")
		}
		msg, err := a.accounts.CreateAlert(ctx, *produto, *preco)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil

	case "list":
		alerts, err := a.accounts.ListAlerts(ctx)
		if err != nil {
			return err
		}
		if len(alerts) == 0 {
			fmt.Println("Nenhum alerta cadastrado.")
			return nil
		}
		for _, al := range alerts {
			fmt.Printf("#%d  %s — R$ %.2f\n", al.ID, al.Produto, al.Preco)
		}
		return nil

	case "update":
		fs := flag.NewFlagSet("alert update", flag.ExitOnError)
		id := fs.Int64("id", 0, "id do alerta")
		produto := fs.String("produto", "", "novo nome do produto")
		preco := fs.Float64("preco", 0, "novo preço desejado")
		fs.Parse(args[1:])
		if *id == 0 {
			return fmt.Errorf("usage: hunter alert update -id <id> [-produto <nome>] [-preco <valor>]")
		}
		msg, err := a.accounts.UpdateAlert(ctx, *id,
			optString(fs, "produto", *produto), optFloat(fs, "preco", *preco))
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil

	case "delete":
		fs := flag.NewFlagSet("alert delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "id do alerta")
		fs.Parse(args[1:])
		if *id == 0 {
			return fmt.Errorf("usage: hunter alert delete -id <id>")
		}
		msg, err := a.accounts.DeleteAlert(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	}

	return fmt.Errorf("usage: hunter alert create|list|update|delete")
}

func (a *app) runFeedback(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: hunter feedback send|list|update|delete")
	}

	switch args[0] {
	case "send":
		fs := flag.NewFlagSet("feedback send", flag.ExitOnError)
		nome := fs.String("nome", "", "seu nome")
		email := fs.String("email", "", "seu e-mail")
		mensagem := fs.String("mensagem", "", "texto do feedback")
		fs.Parse(args[1:])
		if *nome == "" || *email == "" || *mensagem == "" {
			return fmt.Errorf("usage: hunter feedback send -nome <nome> -email <email> -mensagem <texto>")
		}
		msg, err := a.accounts.SendFeedback(ctx, *nome, *email, *mensagem)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil

	case "list":
		entries, err := a.accounts.ListFeedbacks(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Nenhum feedback enviado.")
			return nil
		}
		for _, fb := range entries {
			fmt.Printf("#%d  %s\n", fb.ID, fb.Feedback)
		}
		return nil

	case "update":
		fs := flag.NewFlagSet("feedback update", flag.ExitOnError)
		id := fs.Int64("id", 0, "id do feedback")
		mensagem := fs.String("mensagem", "", "novo texto")
		fs.Parse(args[1:])
		if *id == 0 || *mensagem == "" {
			return fmt.Errorf("usage: hunter feedback update -id <id> -mensagem <texto>")
		}
		msg, err := a.accounts.UpdateFeedback(ctx, *id, *mensagem)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil

	case "delete":
		fs := flag.NewFlagSet("feedback delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "id do feedback")
		fs.Parse(args[1:])
		if *id == 0 {
			return fmt.Errorf("usage: hunter feedback delete -id <id>")
		}
		msg, err := a.accounts.DeleteFeedback(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	}

	return fmt.Errorf("usage: hunter feedback send|list|update|delete")
}

func (a *app) runUser(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: hunter user update|delete")
	}

	switch args[0] {
	case "update":
		fs := flag.NewFlagSet("user update", flag.ExitOnError)
		nome := fs.String("nome", "", "novo nome")
		email := fs.String("email", "", "novo e-mail")
		senha := fs.String("senha", "", "nova senha")
		fs.Parse(args[1:])

		name := optString(fs, "nome", *nome)
		mail := optString(fs, "email", *email)
		pass := optString(fs, "senha", *senha)
		if name == nil && mail == nil && pass == nil {
			return fmt.Errorf("usage: hunter user update [-nome <nome>] [-email <email>] [-senha <senha>]")
		}

		msg, err := a.accounts.UpdateUser(ctx, name, mail, pass)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil

	case "delete":
		fs := flag.NewFlagSet("user delete", flag.ExitOnError)
		yes := fs.Bool("yes", false, "confirma a exclusão da conta")
		fs.Parse(args[1:])
		if !*yes {
			return fmt.Errorf("a exclusão é permanente; repita com -yes para confirmar")
		}
		msg, err := a.accounts.DeleteUser(ctx)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	}

	return fmt.Errorf("usage: hunter user update|delete")
}

func printProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Println("Nenhum produto encontrado.")
		return
	}
	for _, p := range products {
		fmt.Printf("R$ %9.2f  %s [%s]\n", p.Price, p.Name, p.Origin)
		if p.Link != "" {
			fmt.Printf("             %s\n", p.Link)
		}
	}
}

// optString returns a pointer only when the flag was explicitly set, so
// partial updates leave untouched fields out of the request body.
func optString(fs *flag.FlagSet, name, value string) *string {
	if !flagSet(fs, name) {
		return nil
	}
	return &value
}

func optFloat(fs *flag.FlagSet, name string, value float64) *float64 {
	if !flagSet(fs, name) {
		return nil
	}
	return &value
}

func flagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, domain.UserMessage(err))
	os.Exit(1)
}
