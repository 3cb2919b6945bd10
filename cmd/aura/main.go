package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/007PR/aura/internal/api"
	"github.com/007PR/aura/internal/checkout"
	"github.com/007PR/aura/internal/config"
	"github.com/007PR/aura/internal/logging"
	"github.com/007PR/aura/internal/models"
	"github.com/007PR/aura/internal/report"
	"github.com/007PR/aura/internal/services"
	"github.com/007PR/aura/internal/store"
	"github.com/007PR/aura/pkg/utils"
)

func main() {
	envFile := flag.String("env", "", "env file to load before configuration")
	baseURL := flag.String("base-url", "", "override the API base address")
	flag.Parse()

	// 1. Load Config
	if *envFile != "" {
		if err := godotenv.Overload(*envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", *envFile, err)
			os.Exit(1)
		}
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *baseURL != "" {
		cfg.APIBaseURL = *baseURL
	}

	// 2. Logging and crash reporting
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	reporter := report.New(cfg.SentryDSN, cfg.AppEnv)
	defer reporter.Close()

	// 3. API client
	client := api.NewClient(cfg.APIBaseURL,
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithRateLimit(cfg.RateLimitPerMinute),
		api.WithLogger(log.WithField("component", "api")),
	)

	app := &app{
		cfg:      cfg,
		log:      log,
		reporter: reporter,
		client:   client,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.run(ctx); err != nil {
		reporter.CaptureException(err)
		reporter.Flush(2 * time.Second)
		log.WithError(err).Fatal("Aura exited")
	}
}

type app struct {
	cfg      *config.Config
	log      *logrus.Logger
	reporter *report.Reporter
	client   *api.Client
	in       *bufio.Reader
	out      io.Writer

	session   *services.SessionService
	dashboard *services.DashboardService
	chat      *services.ChatService
	receipts  *services.ReceiptsService
	match     *services.MatchService
	profile   *services.ProfileService
}

func (a *app) run(ctx context.Context) error {
	a.session = services.NewSessionService(store.New(a.cfg.StatePath), a.client, a.log)
	if err := a.session.Boot(); err != nil {
		a.log.WithError(err).Warn("Stored session could not be restored, starting fresh")
	}

	if !a.session.SignedIn() {
		if err := a.onboard(ctx); err != nil {
			return err
		}
	}

	user, ok := a.session.User()
	if !ok {
		return nil
	}
	a.log.WithField("user_id", user.ID).Debug("Session ready")

	a.dashboard = services.NewDashboardService(a.client)
	a.chat = services.NewChatService(a.client, user)
	a.receipts = services.NewReceiptsService(a.client)
	a.match = services.NewMatchService(a.client)

	if !a.cfg.CheckoutConfigured() {
		a.log.Debug("No Razorpay key configured, purchases will be refused")
	}
	provider := checkout.NewRazorpay(a.out, a.promptPayment)
	a.profile = services.NewProfileService(a.client, a.session, provider, a.cfg.RazorpayKeyID)

	return a.loop(ctx)
}

// onboard walks the sign-up wizard until the user is registered or gives
// up.
func (a *app) onboard(ctx context.Context) error {
	wizard := services.NewOnboardingService(a.session)

	fmt.Fprintln(a.out, "✨ Welcome to Aura. The universe has been expecting you.")
	wizard.Begin()

	for wizard.Step() != services.StepDone {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		switch wizard.Step() {
		case services.StepName:
			name, err := a.ask("What's your name? ")
			if err != nil {
				return err
			}
			if err := wizard.SetName(name); err != nil {
				fmt.Fprintln(a.out, wizard.Error())
			}
		case services.StepBirthDate:
			dob, err := a.ask("Date of birth (YYYY-MM-DD)? ")
			if err != nil {
				return err
			}
			if err := wizard.SetBirthDate(dob); err != nil {
				fmt.Fprintln(a.out, wizard.Error())
			}
		case services.StepSign:
			sign, err := a.ask("Your sign? ")
			if err != nil {
				return err
			}
			if err := wizard.SelectSign(sign); err != nil {
				fmt.Fprintln(a.out, wizard.Error())
				continue
			}
			if err := wizard.Submit(ctx); err != nil {
				fmt.Fprintln(a.out, wizard.Error())
			}
		}
	}

	fmt.Fprintln(a.out, wizard.Welcome())
	if wizard.Error() != "" {
		fmt.Fprintf(a.out, "⚠️  %s\n", wizard.Error())
	}
	return nil
}

func (a *app) loop(ctx context.Context) error {
	a.showHome(ctx)
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := a.ask("\n[home chat receipts match profile quit] > ")
		if err != nil {
			return nil
		}
		cmd := services.Tab(strings.ToLower(strings.TrimSpace(line)))
		if cmd == "quit" || cmd == "q" {
			return nil
		}
		a.session.SwitchTab(cmd)
		switch a.session.ActiveTab() {
		case services.TabHome:
			a.showHome(ctx)
		case services.TabChat:
			a.showChat(ctx)
		case services.TabReceipts:
			a.showReceipts(ctx)
		case services.TabMatch:
			a.showMatch(ctx)
		case services.TabProfile:
			a.showProfile(ctx)
		}
	}
}

func (a *app) showHome(ctx context.Context) {
	user, _ := a.session.User()
	placeholder := services.PendingBattery()
	fmt.Fprintf(a.out, "\n🔋 %d%% %s\n", placeholder.Percentage, placeholder.Message)

	a.dashboard.Refresh(ctx, user)
	snap := a.dashboard.Snapshot()

	if snap.Battery != nil {
		fmt.Fprintf(a.out, "🔋 %d%% (%s) %s\n", snap.Battery.Percentage, snap.Battery.Level, snap.Battery.Message)
		for _, transit := range snap.Battery.ActiveTransits {
			fmt.Fprintf(a.out, "   %s %s in %s: %s\n", transit.Planet, transit.Status, transit.Sign, transit.Effect)
		}
	}
	if snap.Roast != nil {
		fmt.Fprintf(a.out, "🔥 %s\n", snap.Roast.Roast)
	}
	if snap.Remedy != nil {
		fmt.Fprintf(a.out, "%s %s: %s\n", snap.Remedy.Icon, snap.Remedy.Title, snap.Remedy.Description)
	}
	if snap.Err != "" {
		fmt.Fprintf(a.out, "⚠️  %s\n", snap.Err)
	}
}

func (a *app) showChat(ctx context.Context) {
	for _, s := range a.chat.Suggestions() {
		fmt.Fprintf(a.out, "  · %s\n", s)
	}
	for {
		line, err := a.ask(fmt.Sprintf("(%s, blank to leave) you: ", a.chat.Mode()))
		if err != nil || strings.TrimSpace(line) == "" {
			return
		}
		if strings.HasPrefix(line, "/mode ") {
			a.chat.SetMode(models.ChatMode(strings.TrimSpace(strings.TrimPrefix(line, "/mode "))))
			continue
		}
		if err := a.chat.Send(ctx, line); err != nil {
			continue
		}
		msgs := a.chat.Messages()
		fmt.Fprintf(a.out, "aura: %s\n", msgs[len(msgs)-1].Text)
	}
}

func (a *app) showReceipts(ctx context.Context) {
	user, _ := a.session.User()
	path, err := a.ask("Screenshot path: ")
	if err != nil {
		return
	}
	if err := a.receipts.AttachFile(strings.TrimSpace(path)); err != nil {
		fmt.Fprintf(a.out, "⚠️  %v\n", err)
		return
	}
	if err := a.receipts.Analyze(ctx, user); err != nil {
		fmt.Fprintf(a.out, "⚠️  %s\n", a.receipts.Error())
		return
	}
	verdict, _ := a.receipts.Verdict()
	fmt.Fprintf(a.out, "☠️  Toxicity %d/100: %s\n", verdict.ToxicScore, verdict.Verdict)
	for _, flag := range verdict.RedFlags {
		fmt.Fprintf(a.out, "   🚩 [%d] %s (%s)\n", flag.Severity, flag.Flag, flag.PlanetaryCause)
	}
	if verdict.Advice != "" {
		fmt.Fprintf(a.out, "   💡 %s\n", verdict.Advice)
	}
	a.receipts.Reset()
}

func (a *app) showMatch(ctx context.Context) {
	user, _ := a.session.User()
	raw, err := a.ask("Their sign: ")
	if err != nil {
		return
	}
	crush, err := models.ParseSign(raw)
	if err != nil {
		fmt.Fprintln(a.out, "Pick one of the twelve signs")
		return
	}
	if err := a.match.Check(ctx, user, crush); err != nil {
		fmt.Fprintf(a.out, "⚠️  %v\n", err)
		return
	}
	result, _ := a.match.Result()
	fmt.Fprintf(a.out, "%s × %s: %d%% (%s)\n", user.Sign.Title(), crush.Title(), result.OverallScore, result.ToxicLevel)
	fmt.Fprintf(a.out, "%s\n", result.Verdict)
	if result.Advice != "" {
		fmt.Fprintf(a.out, "💡 %s\n", result.Advice)
	}
}

func (a *app) showProfile(ctx context.Context) {
	user, _ := a.session.User()
	info, _ := user.Sign.Info()
	fmt.Fprintf(a.out, "\n%s %s · %s %s\n", info.Emoji, user.Name, info.Symbol, user.Sign.Title())
	if user.IsPremium {
		fmt.Fprintln(a.out, "✦ Inner Circle member")
	}

	fmt.Fprintln(a.out, "\nRemedies:")
	for _, remedy := range a.profile.RemedyLibrary() {
		fmt.Fprintf(a.out, "  %s %s: %s\n", remedy.Icon, remedy.Title, utils.Truncate(remedy.Description, 60))
	}

	fmt.Fprintln(a.out, "\nShop:")
	for _, item := range services.Catalog() {
		fmt.Fprintf(a.out, "  %s %s (%s): %s — %s\n", item.Icon, item.Title, item.ID, utils.FormatPaise(item.Amount), item.Description)
	}

	itemID, err := a.ask("Buy (item id, blank to skip): ")
	if err != nil || strings.TrimSpace(itemID) == "" {
		return
	}
	if err := a.profile.Purchase(ctx, user, strings.TrimSpace(itemID)); err != nil {
		fmt.Fprintf(a.out, "⚠️  %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "✅ Payment verified")
}

// promptPayment collects the provider's completion fields from the
// terminal, standing in for the checkout widget's callback.
func (a *app) promptPayment(ctx context.Context, opts checkout.Options) (api.VerifyPaymentRequest, error) {
	paymentID, err := a.ask("Payment id (blank to cancel): ")
	if err != nil || strings.TrimSpace(paymentID) == "" {
		return api.VerifyPaymentRequest{}, checkout.ErrCancelled
	}
	signature, err := a.ask("Signature: ")
	if err != nil {
		return api.VerifyPaymentRequest{}, checkout.ErrCancelled
	}
	return api.VerifyPaymentRequest{
		RazorpayOrderID:   opts.OrderID,
		RazorpayPaymentID: strings.TrimSpace(paymentID),
		RazorpaySignature: strings.TrimSpace(signature),
	}, nil
}

func (a *app) ask(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
