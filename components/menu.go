package components

import "github.com/yohamta/donburi"

// MenuData stores the main menu hover state
type MenuData struct {
	Hovered string // control zone under the cursor, "" for none
}

var Menu = donburi.NewComponentType[MenuData]()
