// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

// Input slot names of the main and overlay passes.
const (
	SlotColorAttachment    = "color_attachment"
	SlotColorResolveTarget = "color_resolve_target"
	SlotDepth              = "depth"
)

// Names are the graph node names of one viewport.
type Names struct {
	Swapchain        string
	Depth            string
	Camera           string
	MSAA             string
	Pass             string
	OverlayPass      string
	OverlayTransform string
}

// PrimaryNames returns the node names of the primary window's viewport.
func PrimaryNames() Names {
	return Names{
		Swapchain:        "primary_swap_chain",
		Depth:            "main_pass_depth_texture",
		Camera:           "main_camera",
		MSAA:             "main_pass_multi_sampled_color_attachment",
		Pass:             "main_pass",
		OverlayPass:      "overlay_pass",
		OverlayTransform: "overlay_transform",
	}
}

// SecondaryNames returns the node names of the secondary window's viewport.
func SecondaryNames() Names {
	return Names{
		Swapchain:        "second_window_swap_chain",
		Depth:            "second_window_depth_texture",
		Camera:           "secondary_camera",
		MSAA:             "second_multi_sampled_color_attachment",
		Pass:             "second_window_pass",
		OverlayPass:      "second_window_overlay_pass",
		OverlayTransform: "second_window_overlay_transform",
	}
}

// CameraKey is the frame key under which a camera node publishes its
// view-projection matrix.
func CameraKey(camera string) string { return "camera/" + camera }

// TransformKey is the frame key under which an overlay transform node
// publishes its screen transform.
func TransformKey(transformNode string) string { return "overlay/" + transformNode }
