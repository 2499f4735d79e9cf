package registry

import "solar-map/internal/domain/entity"

func city(name string, lat, lon float64, color, icon string, insolation float64) entity.City {
	return entity.City{
		Name:        name,
		Coordinates: entity.NewLatLng(lat, lon),
		Color:       color,
		Icon:        icon,
		Insolation:  entity.Insolation(insolation),
	}
}

// DefaultCities returns the built-in catalog. Insolation is the yearly average in
// kWh/m²/day. A fresh slice is returned on every call.
func DefaultCities() []entity.City {
	return []entity.City{
		city("Москва", 55.7558, 37.6176, "#FF0000", "star", 2.6),
		city("Санкт-Петербург", 59.9390, 30.3158, "#0000FF", "university", 2.2),
		city("Новосибирск", 55.0302, 82.9204, "#008000", "tree-conifer", 3.0),
		city("Екатеринбург", 56.8380, 60.5973, "#FFA500", "industry", 2.8),
		city("Казань", 55.7961, 49.1064, "#800080", "mosque", 2.8),
		city("Нижний Новгород", 56.3269, 44.0065, "#00FFFF", "home", 2.6),
		city("Челябинск", 55.1644, 61.4368, "#FF69B4", "industry", 3.0),
		city("Самара", 53.1959, 50.1002, "#8B4513", "plane", 3.1),
		city("Омск", 54.9893, 73.3682, "#2E8B57", "road", 3.2),
		city("Ростов-на-Дону", 47.2224, 39.7187, "#DC143C", "ship", 3.4),
		city("Уфа", 54.7351, 55.9587, "#FFD700", "oil", 2.9),
		city("Красноярск", 56.0153, 92.8932, "#4B0082", "mountain", 2.9),
		city("Пермь", 58.0105, 56.2502, "#00CED1", "factory", 2.5),
		city("Воронеж", 51.6615, 39.2003, "#FF4500", "education", 3.0),
		city("Волгоград", 48.7080, 44.5133, "#2F4F4F", "tower", 3.5),
		city("Краснодар", 45.0355, 38.9753, "#32CD32", "sun", 3.6),
		city("Саратов", 51.5336, 46.0342, "#8A2BE2", "road", 3.2),
		city("Тюмень", 57.1530, 65.5343, "#FF6347", "oil", 2.8),
		city("Тольятти", 53.5088, 49.4192, "#4682B4", "car", 3.1),
		city("Ижевск", 56.8526, 53.2115, "#D2691E", "industry", 2.6),
		city("Барнаул", 53.3548, 83.7699, "#5F9EA0", "wheat", 3.3),
		city("Ульяновск", 54.3142, 48.4031, "#6495ED", "plane", 2.9),
		city("Иркутск", 52.2896, 104.2806, "#DA70D6", "lake", 3.3),
		city("Хабаровск", 48.4802, 135.0719, "#FF8C00", "east", 3.5),
		city("Ярославль", 57.6261, 39.8845, "#7CFC00", "historic", 2.4),
		city("Владивосток", 43.1155, 131.8855, "#1E90FF", "anchor", 3.6),
		city("Махачкала", 42.9831, 47.5047, "#FF1493", "sun", 3.9),
		city("Томск", 56.4846, 84.9482, "#00BFFF", "education", 2.8),
		city("Кемерово", 55.3547, 86.0873, "#228B22", "industry", 2.9),
		city("Новокузнецк", 53.7596, 87.1216, "#FFDAB9", "industry", 2.9),
		city("Рязань", 54.6294, 39.7417, "#8FBC8F", "historic", 2.7),
		city("Астрахань", 46.3497, 48.0408, "#B22222", "ship", 3.9),
		city("Пенза", 53.1959, 45.0183, "#ADFF2F", "home", 2.9),
		city("Набережные Челны", 55.7436, 52.3959, "#FF00FF", "industry", 2.7),
		city("Липецк", 52.6088, 39.5992, "#DAA520", "industry", 2.9),
		city("Тула", 54.1931, 37.6173, "#CD5C5C", "industry", 2.7),
		city("Киров", 58.6036, 49.6680, "#9ACD32", "home", 2.4),
		city("Чебоксары", 56.1463, 47.2511, "#FFB6C1", "home", 2.7),
		city("Калининград", 54.7104, 20.4522, "#87CEEB", "ship", 2.6),
		city("Брянск", 53.2436, 34.3634, "#6B8E23", "home", 2.7),
		city("Курск", 51.7304, 36.1926, "#F08080", "home", 2.9),
		city("Иваново", 57.0004, 40.9739, "#BA55D3", "industry", 2.4),
		city("Магнитогорск", 53.4072, 58.9790, "#B0C4DE", "industry", 3.1),
		city("Тверь", 56.8587, 35.9176, "#FFFAFA", "historic", 2.4),
		city("Ставрополь", 45.0445, 41.9691, "#F0E68C", "sun", 3.6),
		city("Белгород", 50.5956, 36.5873, "#ADD8E6", "home", 3.0),
		city("Сочи", 43.5855, 39.7231, "#98FB98", "umbrella", 3.5),
		city("Архангельск", 64.5393, 40.5170, "#708090", "ship", 1.9),
		city("Мурманск", 68.9585, 33.0827, "#483D8B", "anchor", 1.7),
	}
}
