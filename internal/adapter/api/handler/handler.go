package handler

import (
	"hanaplokal/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	profileHandler      *BusinessProfileHandler
	listingHandler      *ListingHandler
	discoveryHandler    *DiscoveryHandler
	chatHandler         *ChatHandler
	reviewHandler       *ReviewHandler
	notificationHandler *NotificationHandler
	favoriteHandler     *FavoriteHandler
	fileHandler         *FileHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	profileUseCase *usecase.BusinessProfileUseCase,
	listingUseCase *usecase.ListingUseCase,
	discoveryUseCase *usecase.DiscoveryUseCase,
	chatUseCase *usecase.ChatUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	fileUseCase *usecase.FileUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	profileHandler = NewBusinessProfileHandler(profileUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	discoveryHandler = NewDiscoveryHandler(discoveryUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	fileHandler = NewFileHandler(fileUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetBusinessProfileHandler() *BusinessProfileHandler {
	return profileHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetDiscoveryHandler() *DiscoveryHandler {
	return discoveryHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}
