package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fachebot/evm-swap-bot/internal/config"
	"github.com/fachebot/evm-swap-bot/internal/job"
	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/telebot"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/joho/godotenv"
)

var (
	version     = "dev"
	showVersion = flag.Bool("version", false, "显示版本信息")
	configFile  = flag.String("f", "etc/config.yaml", "the config file")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("version: %s\n", version)
		return
	}

	// 加载环境变量
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnf("加载 .env 文件失败, %v", err)
	}

	// 读取配置文件
	c, err := config.LoadFromFile(*configFile)
	if err != nil {
		logger.Fatalf("读取配置文件失败, %s", err)
	}
	logger.SetLevel(c.LogLevel)

	// 创建数据目录
	if _, err := os.Stat("data"); os.IsNotExist(err) {
		err := os.Mkdir("data", 0755)
		if err != nil {
			logger.Fatalf("创建数据目录失败, %s", err)
		}
	}

	// 创建以太坊客户端
	rpcClient, err := rpc.DialContext(context.Background(), c.Chain.RpcUrl)
	if err != nil {
		logger.Fatalf("创建RPC客户端失败, rpcUrl: %s, %v", c.Chain.RpcUrl, err)
	}

	ethClient := ethclient.NewClient(rpcClient)
	chainId, err := ethClient.ChainID(context.Background())
	if err != nil {
		logger.Fatalf("查询链ID失败, rpcUrl: %s, %v", c.Chain.RpcUrl, err)
	}
	if chainId.Int64() != c.Chain.Id {
		logger.Fatalf("链ID与配置不一致, ChainId: %d, got ChainId: %d", c.Chain.Id, chainId)
	}

	// 创建服务上下文
	svcCtx := svc.NewServiceContext(c, ethClient)

	// 运行订单Keeper
	orderKeeper := job.NewOrderKeeper(svcCtx)
	orderKeeper.Start()

	// 运行机器人服务
	botService, err := telebot.NewTeleBot(svcCtx)
	if err != nil {
		logger.Fatalf("创建机器人服务失败, %s", err)
	}
	botService.Start()

	// 等待程序退出
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	botService.Stop()
	orderKeeper.Stop()

	svcCtx.Close()
	logger.Infof("服务已停止")
}
