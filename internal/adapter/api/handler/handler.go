package handler

import (
	"furnimarket/internal/usecase"
)

var (
	productHandler    *ProductHandler
	orderHandler      *OrderHandler
	userHandler       *UserHandler
	favoritesHandler  *FavoritesHandler
	messageHandler    *MessageHandler
	suggestionHandler *SuggestionHandler
	adminHandler      *AdminHandler
)

func Setup(
	productUseCase *usecase.ProductUseCase,
	orderUseCase *usecase.OrderUseCase,
	userUseCase *usecase.UserUseCase,
	favoritesService *usecase.FavoritesService,
	messageUseCase *usecase.MessageUseCase,
	suggestionService *usecase.SuggestionService,
	adminUseCase *usecase.AdminUseCase,
) {
	productHandler = NewProductHandler(productUseCase, userUseCase)
	orderHandler = NewOrderHandler(orderUseCase, userUseCase)
	userHandler = NewUserHandler(userUseCase, favoritesService)
	favoritesHandler = NewFavoritesHandler(favoritesService)
	messageHandler = NewMessageHandler(messageUseCase)
	suggestionHandler = NewSuggestionHandler(suggestionService)
	adminHandler = NewAdminHandler(adminUseCase)
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetFavoritesHandler() *FavoritesHandler {
	return favoritesHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetSuggestionHandler() *SuggestionHandler {
	return suggestionHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
