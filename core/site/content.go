// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package site

import "slices"

var services = []ServiceEntry{
	{
		Title:       "Battle tested",
		Description: "Designed, used, broken-in and validated in collaboration with many studios, who's artist have used it on projects ranging from commercials, to features.",
	},
	{
		Title:       "Supported",
		Description: "OpenPYPE is developed and maintained by PYPE.club, a full-time, dedicated team of industry professionals, providing support and training to studios and artists.",
	},
	{
		Title:       "Extensible",
		Description: "Project needs differ, clients differ and studios differ. OpenPype is designed to fit into your workflow and bend to your will. If a feature is missing, it can most probably be added.",
	},
	{
		Title:       "Focused",
		Description: "All OpenPype features have been added to solve specific needs during it's use in production. If something is obsolete, it is carefully deprecated, to keep the codebase lean and easier to maintain.",
	},
}

var collaborators = []PartnerEntry{
	{Title: "Kredenc Studio", Image: "/img/kredenc.png", InfoLink: "http://kredenc.studio"},
	{Title: "Colorbleed", Image: "/img/colorbleed_logo.png", InfoLink: "http://colorbleed.nl"},
	{Title: "Bumpybox", Image: "/img/bumpybox_bw.png", InfoLink: "http://bumpybox.com"},
	{Title: "Moonshine", Image: "/img/moonshine_logotype.png", InfoLink: "https://www.moonshine.tw/"},
	{Title: "Clothcat Animation", Image: "/img/clothcat.png", InfoLink: "https://www.clothcatanimation.com/"},
}

var clients = []PartnerEntry{
	{Title: "Imagine Studio", Image: "/img/imagine_logo.png", InfoLink: "https://imaginestudio.cz/"},
	{Title: "Dazzle Pictures", Image: "/img/dazzle_CB.png", InfoLink: "https://www.dazzlepictures.net/"},
	{Title: "3DE", Image: "/img/3de.png", InfoLink: "https://www.3de.com.pl/"},
	{Title: "Incognito", Image: "/img/client_incognito.png", InfoLink: "https://incognito.studio/"},
	{Title: "Fourth Wall Animation", Image: "/img/client_fourthwall_logo.png", InfoLink: "https://fourthwallanimation.com/"},
	{Title: "The Scope Studio", Image: "/img/thescope_logo.png", InfoLink: "https://thescope.studio/"},
	{Title: "The Line Animation", Image: "/img/thelineanimationlogo.png", InfoLink: "https://www.thelineanimation.com/"},
	{Title: "Filmmore", Image: "/img/filmmore_logotype_bw.png", InfoLink: "https://filmmore.nl/"},
	{Title: "Yowza Animation", Image: "/img/client_yowza_logo.png", InfoLink: "https://yowzaanimation.com/"},
	{Title: "Red Knuckles", Image: "/img/redknuckles_logotype.png", InfoLink: "https://www.redknuckles.co.uk/"},
	{Title: "Orca Studios", Image: "/img/orcastudios_logo.png", InfoLink: "https://orcastudios.es/"},
}

// Supported hosts and services. Note that Nuke and Nuke Studio share an
// icon, and Nuke Studio and Hiero share a features anchor.
var integrations = []Integration{
	{Name: "Maya", Image: "/img/app_maya.png", Anchor: "maya"},
	{Name: "Nuke", Image: "/img/app_nuke.png", Anchor: "nuke"},
	{Name: "Nuke Studio", Image: "/img/app_nuke.png", Anchor: "hiero"},
	{Name: "Hiero", Image: "/img/app_hiero.png", Anchor: "hiero"},
	{Name: "Houdini", Image: "/img/app_houdini.png", Anchor: "houdini"},
	{Name: "Blender", Image: "/img/app_blender.png", Anchor: "blender"},
	{Name: "Fusion", Image: "/img/app_fusion.png", Anchor: "fusion"},
	{Name: "Harmony", Image: "/img/app_toonboom.png", Anchor: "harmony"},
	{Name: "Photoshop", Image: "/img/app_photoshop.png", Anchor: "photoshop"},
	{Name: "Ftrack", Image: "/img/app_ftrack.png", Anchor: "ftrack"},
	{Name: "Clockify", Image: "/img/app_clockify.png", Anchor: "clockify"},
	{Name: "Deadline", Image: "/img/app_deadline.png"},
	{Name: "Muster", Image: "/img/app_muster.png"},
	{Name: "Unreal Engine (Beta)", Image: "/img/app_unreal.png"},
	{Name: "After Effects", Image: "/img/app_aftereffects.png"},
	{Name: "TV Paint", Image: "/img/app_tvpaint.png"},
	{Name: "DaVinci Resolve (Alpha)", Image: "/img/app_resolve.png"},
}

var inDevelopment = []Integration{
	{Name: "Storyboard Pro", Image: "/img/app_storyboardpro.svg"},
}

var maintainers = []PartnerEntry{
	{Title: "pype.club", Image: "/img/logos/pypeclub_black.svg", InfoLink: "https://pype.club"},
}

// DefaultContent returns the built-in homepage content.
//
// The returned slices are copies; callers may modify them freely.
func DefaultContent() Content {
	return Content{
		Services:      slices.Clone(services),
		Collaborators: slices.Clone(collaborators),
		Clients:       slices.Clone(clients),
		Integrations:  slices.Clone(integrations),
		InDevelopment: slices.Clone(inDevelopment),
		Maintainers:   slices.Clone(maintainers),
	}
}
