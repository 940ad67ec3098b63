//go:generate mockgen -source=../ranking_store.go       -destination=./mock_ranking_store.go       -package=mocks
//go:generate mockgen -source=../sales_source.go        -destination=./mock_sales_source.go        -package=mocks
//go:generate mockgen -source=../ranking_validator.go   -destination=./mock_ranking_validator.go   -package=mocks
//go:generate mockgen -source=../logger.go              -destination=./mock_logger.go              -package=mocks
//go:generate mockgen -source=../message_consumer.go    -destination=./mock_message_consumer.go    -package=mocks
//go:generate mockgen -source=../top_products_reader.go -destination=./mock_top_products_reader.go -package=mocks
//go:generate mockgen -source=../refresh_publisher.go   -destination=./mock_refresh_publisher.go   -package=mocks

package mocks
