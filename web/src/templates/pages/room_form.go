package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mchadwick/parley/internal/domain"
)

// RoomFormData is the context for the room create/edit form. Room is nil
// when creating.
type RoomFormData struct {
	Room   *domain.Room
	Topics []domain.Topic
}

// RoomForm renders the room create/edit form, pre-filled when editing.
// All known topics are offered as datalist suggestions; submitting a new
// topic name creates the topic.
func RoomForm(data RoomFormData) g.Node {
	title := "Create room"
	action := "/rooms/new"
	var topicName, roomName, description string
	if data.Room != nil {
		title = "Edit room"
		action = "/rooms/" + data.Room.ID + "/edit"
		topicName = data.Room.Topic.Name
		roomName = data.Room.Name
		description = data.Room.Description
	}

	return h.Section(
		h.H1(g.Text(title)),
		h.Form(
			h.Method("post"),
			h.Action(action),
			h.Label(h.For("topic"), g.Text("Topic")),
			h.Input(h.Type("text"), h.ID("topic"), h.Name("topic"), h.Value(topicName), g.Attr("list", "topic-suggestions"), h.Required()),
			h.DataList(
				h.ID("topic-suggestions"),
				g.Group(g.Map(data.Topics, func(t domain.Topic) g.Node {
					return h.Option(h.Value(t.Name))
				})),
			),
			h.Label(h.For("name"), g.Text("Room name")),
			h.Input(h.Type("text"), h.ID("name"), h.Name("name"), h.Value(roomName), h.Required()),
			h.Label(h.For("description"), g.Text("Description")),
			h.Textarea(h.ID("description"), h.Name("description"), g.Text(description)),
			h.Button(h.Type("submit"), g.Text("Save")),
		),
	)
}

// DeleteConfirm renders the shared delete confirmation page used for
// rooms and messages. The POST goes back to the current URL.
func DeleteConfirm(objName string) g.Node {
	return h.Section(
		h.H1(g.Text("Confirm delete")),
		h.P(g.Textf("Are you sure you want to delete %q?", objName)),
		h.Form(
			h.Method("post"),
			h.Button(h.Type("submit"), g.Text("Delete")),
			g.Text(" "),
			h.A(h.Href("/"), g.Text("Cancel")),
		),
	)
}
