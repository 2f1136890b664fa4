package telegram

const (
	msgStart = `👋 Привет! Я делаю мемы.

📸 Отправьте картинку — я впишу её в кадр.
✍️ Затем отправьте текст: первая строка — верхняя подпись, вторая — нижняя.
🗣 После подписей можно озвучить мем выбранным голосом.

📋 Команды:
/caption верх | низ — подписать мем
/volume 0-100 — громкость озвучки
/voices — выбрать голос
/clear — очистить холст
/help — справка`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте картинку (фото или файлом)
2️⃣ Отправьте подписи: первая строка сверху, вторая снизу
3️⃣ Под мемом появятся кнопки: очистить, озвучить, громкость и голос

💡 Подписи можно прислать сразу в подписи к фото.

📋 Команды:
/caption верх | низ — подписать мем
/volume 0-100 — громкость озвучки
/voices — выбрать голос
/clear — очистить холст
/cancel — начать заново`

	msgSendImageFirst   = "📸 Сначала отправьте картинку."
	msgDrawn            = "✍️ Теперь отправьте подписи: первая строка сверху, вторая снизу."
	msgEmptyCaptions    = "✍️ Подписи пустые. Отправьте текст: первая строка сверху, вторая снизу."
	msgCleared          = "🧹 Холст очищен. Отправьте новую картинку."
	msgCancelled        = "❌ Начинаем заново. Отправьте картинку."
	msgUnknownCommand   = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessingError  = "⚠️ Не удалось обработать картинку. Попробуйте другую."
	msgNotAnImage       = "⚠️ Этот файл не похож на картинку."
	msgControlsDisabled = "Кнопка недоступна: сначала подпишите мем."
	msgNoVoices         = "🎙 Голоса недоступны. Проверьте настройки синтеза речи."
	msgSpeechError      = "⚠️ Не удалось озвучить мем."
	msgVoiceSelected    = "🎙 Голос: %s"
	msgVolumeUsage      = "🔊 Укажите громкость от 0 до 100, например: /volume 50"
	msgVolume           = "Громкость: %s"
)
