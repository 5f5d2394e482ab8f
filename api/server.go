package api

import (
	"context"
	"fmt"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/jday1/euros/api/controllers"
	"github.com/jday1/euros/api/transport"
	"github.com/jday1/euros/logging"
	"github.com/jday1/euros/storage"
	"os"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Create storage
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	dynamoClient := dynamodb.NewFromConfig(cfg)

	teamStorage := &storage.DynamoTeamStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameTeams,
	}
	fixtureStorage := &storage.DynamoFixtureStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameFixtures,
	}
	pickStorage := &storage.DynamoPickStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNamePicks,
	}
	playerStorage := &storage.DynamoPlayerStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNamePlayers,
	}
	codeStorage := &storage.DynamoInviteCodeStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameCodes,
	}
	fixtureSource := &storage.S3FixtureSource{
		Client: s3.NewFromConfig(cfg),
		Bucket: s.config.FixturesBucket,
		Key:    s.config.FixturesKey,
	}

	//Register controllers
	standingsController := controllers.NewStandingsController(fixtureStorage, pickStorage, playerStorage, teamStorage, s.config.CustomOrderings)
	standingsController.RegisterRoutes(r)
	fixturesController := controllers.NewFixturesController(fixtureStorage, pickStorage, playerStorage, s.config.CutoffTime)
	fixturesController.RegisterRoutes(r)
	playController := controllers.NewPlayController(pickStorage, teamStorage, playerStorage, s.config.CutoffTime)
	playController.RegisterRoutes(r)
	accessController := controllers.NewAccessController(codeStorage, playerStorage)
	accessController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(codeStorage, fixtureStorage, pickStorage, fixtureSource)
	adminController.RegisterRoutes(r)
	metaTeamController := controllers.NewTeamMetaController(teamStorage)
	metaTeamController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// startLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// startLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
