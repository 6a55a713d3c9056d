package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"TimeTrader/internal/catalog"
	"TimeTrader/internal/config"
	"TimeTrader/internal/game"
	"TimeTrader/internal/model"
	"TimeTrader/internal/series"
	"TimeTrader/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TimeTrader starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Static game catalog
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		log.Fatalf("[FATAL] catalog validation: %v", err)
	}

	// Session store
	maxAge := time.Duration(cfg.Session.MaxAgeHours) * time.Hour
	st := openStore(cfg, maxAge)
	defer st.Close()

	// Price series provider
	var provider series.Provider
	if cfg.Data.Provider == "yahoo" {
		provider = series.NewYahooProvider(cfg.Data.Proxy)
	} else {
		params := make(map[string]series.GenParams)
		for _, d := range cat.Dungeons() {
			params[d.Symbol] = series.ParamsFor(d.Difficulty)
		}
		provider = series.NewSyntheticProvider(params)
	}
	log.Printf("[INFO] price data source: %s", provider.Name())

	svc := game.NewService(cat, provider, st)

	// Stale-session janitor
	janitor, err := store.NewJanitor(st, cfg.Session.PruneCron, maxAge)
	if err != nil {
		log.Fatalf("[FATAL] init session janitor: %v", err)
	}
	janitor.Start()
	defer janitor.Stop()

	// Session identity: the web layer normally owns this via a cookie; the
	// CLI stands in with an env override or a fresh uuid.
	sessionID := os.Getenv("TT_SESSION")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	log.Printf("[INFO] session: %s", sessionID)

	// Wait for the player to quit or for a shutdown signal, so the store and
	// janitor still close cleanly on ctrl-c.
	done := make(chan struct{})
	go func() {
		repl(svc, sessionID)
		close(done)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-done:
	case sig := <-sigCh:
		log.Printf("[INFO] shutdown signal received: %v", sig)
	}
	log.Println("[INFO] TimeTrader stopped")
}

func openStore(cfg *config.Config, maxAge time.Duration) store.Store {
	switch cfg.Store.Driver {
	case "redis":
		st, err := store.NewRedisStore(cfg.Store.RedisAddr, cfg.Store.RedisPassword, cfg.Store.RedisDB, maxAge)
		if err != nil {
			log.Printf("[WARN] init redis store failed, using memory: %v", err)
			return store.NewMemoryStore()
		}
		return st
	case "memory":
		return store.NewMemoryStore()
	default:
		st, err := store.NewSQLiteStore(cfg.Store.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using memory: %v", err)
			return store.NewMemoryStore()
		}
		return st
	}
}

func repl(svc *game.Service, sessionID string) {
	in := bufio.NewScanner(os.Stdin)
	cat := svc.Catalog()

	if _, err := svc.Profile(sessionID); err != nil {
		runOnboarding(svc, sessionID, in)
	}

	fmt.Println("コマンド: dungeons, enter <id>, buy, sell, next, settle, equip <id>, profile, reset, quit")
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, arg := fields[0], ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		switch cmd {
		case "quit", "exit":
			return

		case "profile":
			p, err := svc.Profile(sessionID)
			if err != nil {
				fmt.Println("先に転生診断を受けてください")
				continue
			}
			ci, _ := cat.Class(p.PlayerClass)
			fmt.Printf("%s %s | Lv.%d | XP %d (次まで %d) | %dG | 勝率 %.0f%%\n",
				ci.Icon, ci.JapaneseName, p.Level, p.XP, p.XPToNextLevel, p.Gold, p.WinRate*100)

		case "dungeons":
			list, err := svc.Dungeons(sessionID)
			if err != nil {
				fmt.Println("先に転生診断を受けてください")
				continue
			}
			for _, d := range list {
				mark := " "
				if d.Completed {
					mark = "✓"
				}
				fmt.Printf("[%s] %-12s %s (%s) 推奨Lv.%d XP%d %dG\n",
					mark, d.ID, d.Name, cat.DifficultyLabel(d.Difficulty), d.RecommendedLevel, d.XPReward, d.GoldReward)
			}

		case "enter":
			p, err := svc.EnterDungeon(sessionID, arg)
			switch {
			case err == game.ErrDungeonNotFound:
				fmt.Println("ダンジョンが見つかりません")
			case err == game.ErrEmptyData:
				fmt.Println("市場データがありません")
			case err != nil:
				fmt.Printf("入場失敗: %v\n", err)
			default:
				printDay(p)
			}

		case "buy", "sell":
			p, rec, err := svc.SubmitTrade(sessionID, model.TradeAction(cmd))
			if err != nil {
				fmt.Printf("トレード不可: %v\n", err)
				continue
			}
			if rec == nil {
				fmt.Println("（約定なし）")
			} else if rec.Action == model.ActionSell {
				fmt.Printf("売却 %d株 @%.2f 損益 %+.2f\n", rec.Shares, rec.Price, rec.Profit)
			} else {
				fmt.Printf("購入 %d株 @%.2f\n", rec.Shares, rec.Price)
			}
			printDay(p)

		case "next":
			p, finished, err := svc.NextDay(sessionID)
			if err != nil {
				fmt.Printf("進行不可: %v\n", err)
				continue
			}
			if finished {
				fmt.Println("最終日終了。settle で清算してください")
				continue
			}
			printDay(p)

		case "settle":
			res, err := svc.SettleRun(sessionID)
			if err != nil {
				fmt.Printf("清算不可: %v\n", err)
				continue
			}
			fmt.Printf("最終資産 %.2f | 損益 %+.2f (%+.1f%%) | +%dXP +%dG\n",
				res.Outcome.FinalValue, res.Outcome.ProfitLoss, res.Outcome.ProfitLossPct,
				res.Outcome.XPEarned, res.Outcome.GoldEarned)
			if res.LeveledUp {
				fmt.Printf("レベルアップ! Lv.%d → Lv.%d\n", res.OldLevel, res.Profile.Level)
			}
			for _, def := range res.NewIndicators {
				fmt.Printf("新装備解放: %s（%s）\n", def.RPGName, def.Name)
			}

		case "equip":
			p, err := svc.ToggleIndicator(sessionID, arg)
			if err != nil {
				fmt.Printf("装備変更不可: %v\n", err)
				continue
			}
			for _, slot := range p.Indicators {
				def, _ := cat.Indicator(slot.ID)
				state := "未解放"
				if slot.Equipped {
					state = "装備中"
				} else if slot.Unlocked {
					state = "解放済"
				}
				fmt.Printf("%-16s %s [%s]\n", slot.ID, def.RPGName, state)
			}

		case "reset":
			if err := svc.ResetSession(sessionID); err != nil {
				fmt.Printf("リセット失敗: %v\n", err)
				continue
			}
			fmt.Println("最初からやり直します")
			runOnboarding(svc, sessionID, in)

		default:
			fmt.Println("コマンド: dungeons, enter <id>, buy, sell, next, settle, equip <id>, profile, reset, quit")
		}
	}
}

func runOnboarding(svc *game.Service, sessionID string, in *bufio.Scanner) {
	cat := svc.Catalog()
	questions := cat.Questions()
	fmt.Println("=== 転生診断 ===")

	for {
		current, err := svc.QuizProgress(sessionID)
		if err != nil || current >= len(questions) {
			return
		}
		q := questions[current]
		fmt.Printf("Q%d. %s\n", current+1, q.Question)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt.Text)
		}
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		choice, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil || choice < 1 || choice > len(q.Options) {
			fmt.Println("番号で答えてください")
			continue
		}
		profile, err := svc.AnswerQuiz(sessionID, q.ID, choice-1)
		if err != nil {
			fmt.Printf("回答エラー: %v\n", err)
			continue
		}
		if profile != nil {
			ci, _ := cat.Class(profile.PlayerClass)
			fmt.Printf("あなたは %s %s！ %s\n", ci.Icon, ci.JapaneseName, ci.Description)
			return
		}
	}
}

func printDay(p *model.Playthrough) {
	bar := p.CurrentBar()
	fmt.Printf("Day %d/%d %s | 終値 %.2f | 現金 %.2f | 保有 %d株",
		p.CurrentDay+1, p.TotalDays, bar.Date, bar.Close, p.Cash, p.Shares)
	if p.Shares > 0 {
		fmt.Printf(" (平均取得 %.2f)", p.AvgPrice)
	}
	fmt.Println()
	if bar.RSI14 != nil {
		fmt.Printf("  RSI14 %.1f", *bar.RSI14)
		if bar.SMA25 != nil {
			fmt.Printf(" | SMA25 %.2f", *bar.SMA25)
		}
		if bar.MACDHist != nil {
			fmt.Printf(" | MACDヒスト %+.3f", *bar.MACDHist)
		}
		fmt.Println()
	}
}
