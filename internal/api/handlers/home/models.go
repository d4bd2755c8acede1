package home

import (
	"github.com/m04kA/SMC-BarbershopService/internal/service/catalog/models"
)

// HomeView главная страница
type HomeView struct {
	models.HomeResponse
	SignedIn bool `json:"signedIn"`
	// Next куда ведет основная кнопка: /dashboard для вошедшего пользователя, иначе /register
	Next string `json:"next"`
}

// FromServiceResponse собирает модель страницы
func FromServiceResponse(resp *models.HomeResponse, signedIn bool) *HomeView {
	next := "/register"
	if signedIn {
		next = "/dashboard"
	}
	return &HomeView{
		HomeResponse: *resp,
		SignedIn:     signedIn,
		Next:         next,
	}
}
