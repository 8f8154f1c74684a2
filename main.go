package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fintrack/config"
	"fintrack/database"
	"fintrack/middleware"
	"fintrack/router"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

// @title 个人记账 API
// @version 1.0
// @description 个人收支记录、类别、月度报表与储蓄目标
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("fintrack v1.0.0")
		return
	}

	// .env 仅用于本地开发，不存在时忽略
	if err := godotenv.Load(); err == nil {
		log.Println("已加载 .env")
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	config.PrintConfig()

	store, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("存储初始化失败: %v", err)
	}
	defer store.Close()

	middleware.InitJWT(cfg)

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: router.SetupRouter(cfg, store),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("==========================================")
		log.Printf("  fintrack 已启动")
		log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
		log.Printf("  API接口:  http://localhost%s/api/v1/", cfg.Server.Port)
		log.Printf("==========================================")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("正在关闭服务...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("服务异常退出: %v", err)
		store.Close()
		os.Exit(1)
	}
	log.Println("服务已关闭")
}
