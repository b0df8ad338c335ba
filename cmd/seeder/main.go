package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/dependencies"
	"github.com/Xushengqwer/content_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/content_service/repo/redis"
	"github.com/Xushengqwer/content_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numRecords int
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numRecords, "n", 20, "每类内容要生成的记录数量 (默认: 20)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' (尝试绝对路径: '%s') 为每类内容生成 %d 条测试记录...\n", configFile, absConfigFile, numRecords)

	if numRecords <= 0 {
		fmt.Println("错误: 生成的记录数量必须大于 0")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.ContentConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")
	if cfg.MySQLConfig.Write.DSN == "" {
		fmt.Println("警告: MySQL Write DSN 为空。请检查：")
		fmt.Println("1. 配置文件路径是否正确 (当前尝试路径: ", absConfigFile, ")。")
		fmt.Println("2. 配置文件内容中 `mysql.write.dsn` 是否存在且有值。")
		fmt.Println("3. 是否有环境变量覆盖了此配置项为空字符串。")
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL 数据库连接 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化 Redis (主题写路径需要失效缓存) ---
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败 (Seeder)", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功 (Seeder)")

	// --- 5. 初始化 Repositories ---
	discussionRepo := mysql.NewDiscussionRepository(db, logger)
	entryRepo := mysql.NewDiscussionEntryRepository(db)
	faqRepo := mysql.NewFaqRepository(db)
	locationRepo := mysql.NewLocationRepository(db)
	resourceRepo := mysql.NewResourceRepository(db, logger)
	topicRepo := mysql.NewTopicRepository(db, logger)
	topicCache := redisrepo.NewTopicCache(rdb, logger)

	// --- 6. 初始化 Services ---
	// Seeder 不发 Kafka 事件，也不触碰对象存储，生产者传 nil 即可。
	discussionSvc := service.NewDiscussionService(db, discussionRepo, entryRepo, nil, logger)
	faqSvc := service.NewFaqService(db, faqRepo, logger)
	locationSvc := service.NewLocationService(db, locationRepo, logger)
	resourceSvc := service.NewResourceService(db, resourceRepo, nil, logger)
	topicSvc := service.NewTopicService(db, topicRepo, topicCache, nil, logger)
	logger.Info("Services 已初始化 (Seeder)")

	// --- 7. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()
	logger.Info("开始执行数据填充...", zap.Int("每类数量", numRecords))

	Seed(ctx, &Seeders{
		Discussions: discussionSvc,
		Faqs:        faqSvc,
		Locations:   locationSvc,
		Resources:   resourceSvc,
		Topics:      topicSvc,
	}, logger, numRecords)

	duration := time.Since(startTime)
	fmt.Printf("数据填充完成！总耗时: %v\n", duration)
	logger.Info("Seeder main: 所有任务完成，准备退出。", zap.Duration("耗时", duration))
}
